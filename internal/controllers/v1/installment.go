package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pulso-app/backend/internal/httputil"
	"github.com/pulso-app/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterInstallmentRoutes registers the routes for installment plans with
// the RouterGroup that is passed.
func RegisterInstallmentRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsInstallmentList)
		r.GET("", GetInstallments)
		r.POST("", CreateInstallments)
	}

	// Installment with ID
	{
		r.OPTIONS("/:id", OptionsInstallmentDetail)
		r.GET("/:id", GetInstallment)
		r.PATCH("/:id", UpdateInstallment)
		r.DELETE("/:id", DeleteInstallment)
	}

	// Payments
	{
		r.OPTIONS("/:id/payments", OptionsInstallmentPayments)
		r.POST("/:id/payments", CreateInstallmentPayment)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Installments
// @Success		204
// @Router			/v1/installments [options]
func OptionsInstallmentList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Installments
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/installments/{id} [options]
func OptionsInstallmentDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Installment{})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Installments
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/installments/{id}/payments [options]
func OptionsInstallmentPayments(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Installment{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsPost(c)
}

// @Summary		Create installment plans
// @Description	Creates new installment plans. The per-installment amount is computed from the total amount and the count.
// @Tags			Installments
// @Produce		json
// @Success		201				{object}	InstallmentCreateResponse
// @Failure		400				{object}	InstallmentCreateResponse
// @Failure		404				{object}	InstallmentCreateResponse
// @Failure		500				{object}	InstallmentCreateResponse
// @Param			installments	body		[]InstallmentEditable	true	"Installment plans"
// @Router			/v1/installments [post]
func CreateInstallments(c *gin.Context) {
	var editables []InstallmentEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InstallmentCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := InstallmentCreateResponse{}

	for _, editable := range editables {
		installment := editable.model()

		err = models.DB.Create(&installment).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newInstallment(c, installment)
		r.Data = append(r.Data, InstallmentResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get installment plans
// @Description	Returns a list of installment plans
// @Tags			Installments
// @Produce		json
// @Success		200	{object}	InstallmentListResponse
// @Failure		400	{object}	InstallmentListResponse
// @Failure		500	{object}	InstallmentListResponse
// @Router			/v1/installments [get]
// @Param			description	query	string	false	"Filter by description"
// @Param			category	query	string	false	"Filter by category ID"
// @Param			status		query	string	false	"Filter by lifecycle state"
// @Param			search		query	string	false	"Search for this text in the description"
// @Param			offset		query	uint	false	"The offset of the first plan returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of plans to return. Defaults to 50."
func GetInstallments(c *gin.Context) {
	var filter InstallmentQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	filterModel, err := filter.model()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InstallmentListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.
		Order("start_date DESC, description ASC").
		Where(&filterModel, queryFields...)

	q = stringFilter(q, setFields, "Description", "description", filter.Description)
	q = searchFilter(models.DB, q, filter.Search, "description")

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 plans and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var installments []models.Installment
	err = q.Find(&installments).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InstallmentListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InstallmentListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Installment, 0)
	for _, installment := range installments {
		data = append(data, newInstallment(c, installment))
	}

	c.JSON(http.StatusOK, InstallmentListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get installment plan
// @Description	Returns a specific installment plan
// @Tags			Installments
// @Produce		json
// @Success		200	{object}	InstallmentResponse
// @Failure		400	{object}	InstallmentResponse
// @Failure		404	{object}	InstallmentResponse
// @Failure		500	{object}	InstallmentResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/installments/{id} [get]
func GetInstallment(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InstallmentResponse{
			Error: &s,
		})
		return
	}

	var installment models.Installment
	err = models.DB.First(&installment, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InstallmentResponse{
			Error: &s,
		})
		return
	}

	data := newInstallment(c, installment)
	c.JSON(http.StatusOK, InstallmentResponse{Data: &data})
}

// @Summary		Update installment plan
// @Description	Update an existing installment plan. Only values to be updated need to be specified. Editing the total amount or the count recomputes the per-installment amount.
// @Tags			Installments
// @Accept			json
// @Produce		json
// @Success		200			{object}	InstallmentResponse
// @Failure		400			{object}	InstallmentResponse
// @Failure		404			{object}	InstallmentResponse
// @Failure		500			{object}	InstallmentResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			installment	body		InstallmentEditable	true	"Installment plan"
// @Router			/v1/installments/{id} [patch]
func UpdateInstallment(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InstallmentResponse{
			Error: &s,
		})
		return
	}

	var installment models.Installment
	err = models.DB.First(&installment, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InstallmentResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, InstallmentEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InstallmentResponse{
			Error: &s,
		})
		return
	}

	data := InstallmentEditable{
		Description: installment.Description,
		TotalAmount: installment.TotalAmount,
		Count:       installment.Count,
		Paid:        installment.Paid,
		DueDay:      installment.DueDay,
		StartDate:   installment.StartDate,
		CategoryID:  installment.CategoryID,
		Status:      installment.Status,
	}

	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InstallmentResponse{
			Error: &s,
		})
		return
	}

	// Changing the purchase total or the count changes every installment
	if fieldSet(updateFields, "TotalAmount") || fieldSet(updateFields, "Count") {
		updateFields = append(updateFields, "InstallmentAmount")
	}

	err = models.DB.Model(&installment).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InstallmentResponse{
			Error: &s,
		})
		return
	}

	r := newInstallment(c, installment)
	c.JSON(http.StatusOK, InstallmentResponse{Data: &r})
}

// @Summary		Delete installment plan
// @Description	Deletes an installment plan
// @Tags			Installments
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/installments/{id} [delete]
func DeleteInstallment(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var installment models.Installment
	err = models.DB.First(&installment, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&installment).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Register payment
// @Description	Registers the payment of the next open installment. When the last installment is paid, the plan transitions to "paid-off".
// @Tags			Installments
// @Produce		json
// @Success		200	{object}	InstallmentResponse
// @Failure		400	{object}	InstallmentResponse
// @Failure		404	{object}	InstallmentResponse
// @Failure		500	{object}	InstallmentResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/installments/{id}/payments [post]
func CreateInstallmentPayment(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InstallmentResponse{
			Error: &s,
		})
		return
	}

	var installment models.Installment
	err = models.DB.First(&installment, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InstallmentResponse{
			Error: &s,
		})
		return
	}

	err = installment.MarkPaid(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InstallmentResponse{
			Error: &s,
		})
		return
	}

	data := newInstallment(c, installment)
	c.JSON(http.StatusOK, InstallmentResponse{Data: &data})
}
