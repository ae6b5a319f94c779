package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pulso-app/backend/internal/httputil"
	"github.com/pulso-app/backend/internal/models"
)

// RegisterRootRoutes registers the routes for the API root with
// the RouterGroup that is passed.
func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.DELETE("", Cleanup)
	r.OPTIONS("", Options)
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Categories    string `json:"categories" example:"https://example.com/v1/categories"`       // URL of the category collection endpoint
	Installments  string `json:"installments" example:"https://example.com/v1/installments"`   // URL of the installment plan collection endpoint
	Subscriptions string `json:"subscriptions" example:"https://example.com/v1/subscriptions"` // URL of the subscription collection endpoint
	Goals         string `json:"goals" example:"https://example.com/v1/goals"`                 // URL of the goal collection endpoint
	Dashboard     string `json:"dashboard" example:"https://example.com/v1/dashboard"`         // URL of the dashboard endpoint
	Export        string `json:"export" example:"https://example.com/v1/export"`               // URL prefix of the export endpoints
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Categories:    url + "/v1/categories",
			Installments:  url + "/v1/installments",
			Subscriptions: url + "/v1/subscriptions",
			Goals:         url + "/v1/goals",
			Dashboard:     url + "/v1/dashboard",
			Export:        url + "/v1/export",
		},
	})
}

// Options returns the allowed HTTP verbs
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}
