package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pulso-app/backend/internal/httputil"
	"github.com/pulso-app/backend/internal/models"
)

// RegisterDashboardRoutes registers the routes for the dashboard with
// the RouterGroup that is passed.
func RegisterDashboardRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsDashboard)
	r.GET("", GetDashboard)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Dashboard
// @Success		204
// @Router			/v1/dashboard [options]
func OptionsDashboard(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get dashboard
// @Description	Returns all aggregated figures for the dashboard: totals, summaries, history, projection, category distribution, upcoming due dates and insights.
// @Tags			Dashboard
// @Produce		json
// @Success		200	{object}	DashboardResponse
// @Failure		400	{object}	DashboardResponse
// @Failure		500	{object}	DashboardResponse
// @Router			/v1/dashboard [get]
// @Param			period		query	string		false	"Period the totals cover. One of this-month, last-3-months, last-6-months, this-year. Defaults to this-month."
// @Param			categories	query	[]string	false	"Category IDs to restrict the dashboard to. Repeatable, values may be comma separated."
func GetDashboard(c *gin.Context) {
	var query DashboardQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&query)

	filter, err := query.filter()
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, DashboardResponse{
			Error: &s,
		})
		return
	}

	snapshot, err := loadSnapshot(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DashboardResponse{
			Error: &s,
		})
		return
	}
	snapshot.Now = time.Now().UTC()

	data := newDashboard(snapshot, filter)
	c.JSON(http.StatusOK, DashboardResponse{Data: &data})
}
