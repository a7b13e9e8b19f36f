// Package models - Assistant thuộc domain CRM (crm_assistants).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Assistant lưu trợ lý chuyên trách (crm_assistants).
type Assistant struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Name   string `json:"name" bson:"name"`
	Phone  string `json:"phone,omitempty" bson:"phone,omitempty"`
	Email  string `json:"email,omitempty" bson:"email,omitempty"`
	Active bool   `json:"active" bson:"active"`

	CreatedAt int64 `json:"createdAt,omitempty" bson:"createdAt,omitempty"` // Unix ms
	UpdatedAt int64 `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"` // Unix ms
}
