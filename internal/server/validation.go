package server

import "interest-capture/internal/common/validation"

func getModalOpenSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type:     "object",
		Required: []string{"productId"},
		Properties: map[string]validation.Property{
			"productId": {
				Type:        "string",
				Description: "Catalog identifier of the product behind the call-to-action",
				MinLength:   intPtr(1),
				MaxLength:   intPtr(100),
			},
		},
		AdditionalProperties: false,
	}
}

func getModalSubmitSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type:     "object",
		Required: []string{"email"},
		Properties: map[string]validation.Property{
			"email": {
				Type:        "string",
				Description: "Visitor contact email",
				Format:      "email",
				MinLength:   intPtr(5),
				MaxLength:   intPtr(255),
			},
		},
		AdditionalProperties: false,
	}
}

func getContactSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type:     "object",
		Required: []string{"email"},
		Properties: map[string]validation.Property{
			"name": {
				Type:        "string",
				Description: "Visitor name",
				MaxLength:   intPtr(255),
			},
			"email": {
				Type:        "string",
				Description: "Visitor contact email",
				Format:      "email",
				MinLength:   intPtr(5),
				MaxLength:   intPtr(255),
			},
			"message": {
				Type:        "string",
				Description: "Free-text message",
				MaxLength:   intPtr(5000),
			},
		},
		AdditionalProperties: false,
	}
}

func intPtr(i int) *int {
	return &i
}
