package approuters

import (
	"github.com/isrcorgin/ISRC-Backend/internal/configuration"

	"github.com/gin-gonic/gin"
)

func FormRouters(router *gin.Engine, container *configuration.Container) {
	awards := router.Group("/api/awards")
	{
		awards.POST("/submit-form", container.AwardsFormHandler.Submit)
		awards.GET("/get-nominations", container.AwardsFormHandler.All)
	}

	forms := router.Group("/api/forms")
	{
		forms.POST("/submit-form", container.GenericFormHandler.Submit)
		forms.GET("/get-all-form", container.GenericFormHandler.All)
		forms.POST("/update-form", container.GenericFormHandler.Update)
		forms.DELETE("/delete-form/:id", container.GenericFormHandler.Delete)
		forms.POST("/add-certificate-form", container.CertHandler.Generate)
	}

	session := router.Group("/api/session")
	{
		session.POST("/submit-session-form", container.SessionFormHandler.Submit)
		// The listing and the certificate generators work off the
		// certification-form submissions; only the raw submit and the
		// phone-number export touch session_forms.
		session.GET("/get-all-session-forms", container.CertificationFormHandler.All)
		session.GET("/get-user-numbers", container.SessionFormHandler.PhoneNumbers)
		session.POST("/generate-one-certificate/:participantID", container.CertHandler.GenerateOne)
		session.POST("/generate-all-certificates", container.CertHandler.GenerateAll)
	}

	certification := router.Group("/api/certification")
	{
		certification.POST("/submit-certification-form", container.CertificationFormHandler.Submit)
		certification.GET("/get-all-certification-forms", container.CertificationFormHandler.All)
	}

	internship := router.Group("/api/internship")
	{
		internship.POST("/submit-internship-form", container.InternshipFormHandler.Submit)
		internship.GET("/get-all-internship-forms", container.InternshipFormHandler.All)
	}
}
