package api

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ntokozo-SA/Symptom-Checker-Chatbot/internal/symptoms"
)

const version = "1.0.0"

// HealthHandler reports liveness for monitoring and testing.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Symptom Checker API is running",
		"version": version,
	})
}

// SymptomsHandler lists the symptom phrases the checker recognizes, mainly
// for frontend development and testing.
func SymptomsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"symptoms": symptoms.Keywords(),
		"count":    symptoms.Count(),
	})
}

// CheckSymptomsHandler validates the request body and delegates to the
// matcher. The input field must be present, a string, and non-blank; each
// failure gets its own message so callers can tell what went wrong.
func CheckSymptomsHandler(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	raw, ok := body["input"]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing 'input' field in request body"})
		return
	}

	input, ok := raw.(string)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Input must be a string"})
		return
	}

	if strings.TrimSpace(input) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Input cannot be empty"})
		return
	}

	log.Printf("symptom check request: %s", input)
	result := symptoms.Analyze(input)
	log.Printf("analysis result: conditions=%v urgent=%v", result.Conditions, result.Urgent)

	c.JSON(http.StatusOK, result)
}
