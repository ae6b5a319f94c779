package v1

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pulso-app/backend/internal/dashboard"
	"github.com/pulso-app/backend/internal/export"
	"github.com/pulso-app/backend/internal/httputil"
	"github.com/pulso-app/backend/internal/models"
)

// RegisterExportRoutes registers the routes for exports with
// the RouterGroup that is passed.
func RegisterExportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/installments.csv", httputil.OptionsGet)
	r.GET("/installments.csv", GetInstallmentsCSV)

	r.OPTIONS("/subscriptions.csv", httputil.OptionsGet)
	r.GET("/subscriptions.csv", GetSubscriptionsCSV)

	r.OPTIONS("/report.pdf", httputil.OptionsGet)
	r.GET("/report.pdf", GetReportPDF)
}

// attachment sets the download headers. The filename carries the current
// date like the app's download buttons do.
func attachment(c *gin.Context, name, extension, contentType string) {
	filename := fmt.Sprintf("%s_%s.%s", name, time.Now().UTC().Format("2006-01-02"), extension)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", contentType)
}

// @Summary		Export installment plans
// @Description	Exports all installment plans as CSV
// @Tags			Export
// @Produce		text/csv
// @Success		200	{string}	string
// @Failure		500	{object}	httpError
// @Router			/v1/export/installments.csv [get]
func GetInstallmentsCSV(c *gin.Context) {
	var installments []models.Installment
	err := models.DB.Order("start_date DESC, description ASC").Find(&installments).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var categories []models.Category
	err = models.DB.Find(&categories).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var buf bytes.Buffer
	err = export.InstallmentsCSV(&buf, installments, categories)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	attachment(c, "parcelamentos", "csv", "text/csv; charset=utf-8")
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// @Summary		Export subscriptions
// @Description	Exports all subscriptions as CSV
// @Tags			Export
// @Produce		text/csv
// @Success		200	{string}	string
// @Failure		500	{object}	httpError
// @Router			/v1/export/subscriptions.csv [get]
func GetSubscriptionsCSV(c *gin.Context) {
	var subscriptions []models.Subscription
	err := models.DB.Order("name ASC").Find(&subscriptions).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var categories []models.Category
	err = models.DB.Find(&categories).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var buf bytes.Buffer
	err = export.SubscriptionsCSV(&buf, subscriptions, categories)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	attachment(c, "assinaturas", "csv", "text/csv; charset=utf-8")
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// @Summary		Export monthly report
// @Description	Exports the monthly report as PDF. It contains the monthly totals and all active commitments.
// @Tags			Export
// @Produce		application/pdf
// @Success		200	{string}	string
// @Failure		500	{object}	httpError
// @Router			/v1/export/report.pdf [get]
func GetReportPDF(c *gin.Context) {
	snapshot, err := loadSnapshot(models.DB)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}
	snapshot.Now = time.Now().UTC()

	var buf bytes.Buffer
	err = export.Report(&buf, snapshot, dashboard.Filter{Period: dashboard.PeriodThisMonth})
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	attachment(c, "relatorio-mensal", "pdf", "application/pdf")
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
