// Package models provides functionality for listing and categorizing
// available OpenAI models. It helps users discover which chat models are
// available with their API key when using the openai provider.
package models
