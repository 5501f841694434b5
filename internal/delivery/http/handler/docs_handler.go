package handler

import (
	"net/http"

	"patient-appointment-api/pkg/response"
)

// DocsHandler serves a hand-assembled OpenAPI 3.0 document for the API.
// The document is a static description kept next to the handlers it
// covers; nothing introspects routes at runtime.
type DocsHandler struct {
	title   string
	version string
}

func NewDocsHandler(title, version string) *DocsHandler {
	return &DocsHandler{
		title:   title,
		version: version,
	}
}

func (h *DocsHandler) GetOpenAPISpec(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.buildSpec())
}

func (h *DocsHandler) buildSpec() map[string]interface{} {
	return map[string]interface{}{
		"openapi": "3.0.3",
		"info": map[string]interface{}{
			"title":       h.title,
			"version":     h.version,
			"description": "HTTP service for scheduling patient appointments",
		},
		"paths": map[string]interface{}{
			"/api/appointments": map[string]interface{}{
				"post": map[string]interface{}{
					"summary":     "Create an appointment",
					"operationId": "createAppointment",
					"tags":        []string{"Appointments"},
					"requestBody": map[string]interface{}{
						"required": true,
						"content": jsonContent("#/components/schemas/CreateAppointmentRequest"),
					},
					"responses": map[string]interface{}{
						"201": jsonResponse("Appointment created", "#/components/schemas/CreateAppointmentResponse"),
						"400": jsonResponse("Validation failed", "#/components/schemas/ValidationError"),
						"404": jsonResponse("Patient not found", "#/components/schemas/Error"),
						"409": jsonResponse("Scheduling conflict", "#/components/schemas/Error"),
						"500": jsonResponse("Storage failure", "#/components/schemas/Error"),
					},
				},
				"get": map[string]interface{}{
					"summary":     "List appointments",
					"operationId": "listAppointments",
					"tags":        []string{"Appointments"},
					"parameters": []map[string]interface{}{
						queryParam("patientId", "Exact patient reference match"),
						queryParam("date", "Exact date match (YYYY-MM-DD)"),
					},
					"responses": map[string]interface{}{
						"200": jsonResponse("Appointments ordered by date then time", "#/components/schemas/AppointmentList"),
						"500": jsonResponse("Storage failure", "#/components/schemas/Error"),
					},
				},
			},
			"/api/appointments/{id}": map[string]interface{}{
				"get": map[string]interface{}{
					"summary":     "Fetch one appointment",
					"operationId": "getAppointment",
					"tags":        []string{"Appointments"},
					"parameters": []map[string]interface{}{
						pathParam("id", "Appointment identifier, matched as opaque text"),
					},
					"responses": map[string]interface{}{
						"200": jsonResponse("Appointment with patient contact fields", "#/components/schemas/AppointmentDetail"),
						"404": jsonResponse("No appointment with that identifier", "#/components/schemas/Error"),
						"500": jsonResponse("Storage failure", "#/components/schemas/Error"),
					},
				},
			},
			"/api/patients": map[string]interface{}{
				"get": map[string]interface{}{
					"summary":     "List patients",
					"operationId": "listPatients",
					"tags":        []string{"Patients"},
					"responses": map[string]interface{}{
						"200": jsonResponse("All patients", "#/components/schemas/PatientList"),
						"500": jsonResponse("Storage failure", "#/components/schemas/Error"),
					},
				},
			},
			"/api/patients/{id}": map[string]interface{}{
				"get": map[string]interface{}{
					"summary":     "Fetch one patient",
					"operationId": "getPatient",
					"tags":        []string{"Patients"},
					"parameters": []map[string]interface{}{
						pathParam("id", "Patient identifier, matched as opaque text"),
					},
					"responses": map[string]interface{}{
						"200": jsonResponse("Patient", "#/components/schemas/Patient"),
						"404": jsonResponse("No patient with that identifier", "#/components/schemas/Error"),
						"500": jsonResponse("Storage failure", "#/components/schemas/Error"),
					},
				},
			},
			"/health": map[string]interface{}{
				"get": map[string]interface{}{
					"summary":     "Liveness probe",
					"operationId": "healthCheck",
					"tags":        []string{"Health"},
					"responses": map[string]interface{}{
						"200": map[string]interface{}{"description": "Service is up"},
					},
				},
			},
		},
		"components": map[string]interface{}{
			"schemas": h.buildSchemas(),
		},
	}
}

func (h *DocsHandler) buildSchemas() map[string]interface{} {
	appointmentProps := map[string]interface{}{
		"AppointmentId":   map[string]string{"type": "integer"},
		"PatientId":       map[string]string{"type": "integer"},
		"PatientName":     map[string]string{"type": "string"},
		"AppointmentDate": map[string]string{"type": "string", "format": "date"},
		"AppointmentTime": map[string]string{"type": "string", "example": "10:30"},
		"Reason":          map[string]string{"type": "string"},
		"Status":          map[string]string{"type": "string", "example": "scheduled"},
	}

	return map[string]interface{}{
		"CreateAppointmentRequest": map[string]interface{}{
			"type":     "object",
			"required": []string{"PatientId", "AppointmentDate", "AppointmentTime", "Reason"},
			"properties": map[string]interface{}{
				"PatientId":       map[string]string{"type": "integer"},
				"AppointmentDate": map[string]string{"type": "string", "format": "date"},
				"AppointmentTime": map[string]string{"type": "string", "example": "10:30"},
				"Reason":          map[string]string{"type": "string"},
			},
		},
		"CreateAppointmentResponse": map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"AppointmentId":   map[string]string{"type": "integer"},
				"PatientId":       map[string]string{"type": "integer"},
				"AppointmentDate": map[string]string{"type": "string", "format": "date"},
				"AppointmentTime": map[string]string{"type": "string"},
				"Reason":          map[string]string{"type": "string"},
				"Message":         map[string]string{"type": "string"},
			},
		},
		"Appointment": map[string]interface{}{
			"type":       "object",
			"properties": appointmentProps,
		},
		"AppointmentList": map[string]interface{}{
			"type":  "array",
			"items": map[string]string{"$ref": "#/components/schemas/Appointment"},
		},
		"AppointmentDetail": map[string]interface{}{
			"type":       "object",
			"properties": withPatientContact(appointmentProps),
		},
		"Patient": map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"PatientId": map[string]string{"type": "integer"},
				"Name":      map[string]string{"type": "string"},
				"Email":     map[string]string{"type": "string"},
				"Phone":     map[string]string{"type": "string"},
			},
		},
		"PatientList": map[string]interface{}{
			"type":  "array",
			"items": map[string]string{"$ref": "#/components/schemas/Patient"},
		},
		"Error": map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"error":   map[string]string{"type": "string"},
				"message": map[string]string{"type": "string"},
			},
		},
		"ValidationError": map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"error": map[string]string{"type": "string", "example": "Validation failed"},
				"details": map[string]interface{}{
					"type": "array",
					"items": map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"field":   map[string]string{"type": "string"},
							"message": map[string]string{"type": "string"},
						},
					},
				},
			},
		},
	}
}

func jsonContent(ref string) map[string]interface{} {
	return map[string]interface{}{
		"application/json": map[string]interface{}{
			"schema": map[string]string{"$ref": ref},
		},
	}
}

func jsonResponse(description, ref string) map[string]interface{} {
	return map[string]interface{}{
		"description": description,
		"content":     jsonContent(ref),
	}
}

func queryParam(name, description string) map[string]interface{} {
	return map[string]interface{}{
		"name":        name,
		"in":          "query",
		"required":    false,
		"description": description,
		"schema":      map[string]string{"type": "string"},
	}
}

func pathParam(name, description string) map[string]interface{} {
	return map[string]interface{}{
		"name":        name,
		"in":          "path",
		"required":    true,
		"description": description,
		"schema":      map[string]string{"type": "string"},
	}
}

func withPatientContact(props map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(props)+2)
	for k, v := range props {
		out[k] = v
	}
	out["PatientEmail"] = map[string]string{"type": "string"}
	out["PatientPhone"] = map[string]string{"type": "string"}
	return out
}
