// Package models lists the OpenAI chat models that can serve as
// translation backends for the API key in use.
package models
