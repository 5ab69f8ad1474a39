package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"backend/internal/settings"
)

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// POST /api/contact — logs the inquiry; no persistence, no email dispatch.
func Contact(siteSettings *settings.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/contact"
		defer handlePanic(c, route)

		var req ContactRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid body")
			return
		}

		log.Println("=== NEW CONTACT FORM SUBMISSION ===")
		log.Printf("To: %s", siteSettings.NotificationEmail())
		log.Printf("From: %s <%s>", req.Name, req.Email)
		log.Printf("Phone: %s", req.Phone)
		log.Printf("Message: %s", req.Message)
		log.Printf("Time: %s", time.Now().Format(time.RFC1123))
		log.Println("===================================")

		c.JSON(http.StatusOK, gin.H{
			"message":   "Thank you for your message! We will contact you soon.",
			"submitted": true,
		})
	}
}
