package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pulso-app/backend/internal/httputil"
	"github.com/pulso-app/backend/internal/models"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// RegisterSubscriptionRoutes registers the routes for subscriptions with
// the RouterGroup that is passed.
func RegisterSubscriptionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsSubscriptionList)
		r.GET("", GetSubscriptions)
		r.POST("", CreateSubscriptions)
	}

	// Subscription with ID
	{
		r.OPTIONS("/:id", OptionsSubscriptionDetail)
		r.GET("/:id", GetSubscription)
		r.PATCH("/:id", UpdateSubscription)
		r.DELETE("/:id", DeleteSubscription)
	}

	// Lifecycle transitions
	{
		r.OPTIONS("/:id/pause", OptionsSubscriptionTransition)
		r.POST("/:id/pause", PauseSubscription)
		r.OPTIONS("/:id/resume", OptionsSubscriptionTransition)
		r.POST("/:id/resume", ResumeSubscription)
		r.OPTIONS("/:id/cancel", OptionsSubscriptionTransition)
		r.POST("/:id/cancel", CancelSubscription)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Subscriptions
// @Success		204
// @Router			/v1/subscriptions [options]
func OptionsSubscriptionList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Subscriptions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/subscriptions/{id} [options]
func OptionsSubscriptionDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Subscription{})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Subscriptions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/subscriptions/{id}/pause [options]
func OptionsSubscriptionTransition(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Subscription{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsPost(c)
}

// @Summary		Create subscriptions
// @Description	Creates new subscriptions
// @Tags			Subscriptions
// @Produce		json
// @Success		201				{object}	SubscriptionCreateResponse
// @Failure		400				{object}	SubscriptionCreateResponse
// @Failure		404				{object}	SubscriptionCreateResponse
// @Failure		500				{object}	SubscriptionCreateResponse
// @Param			subscriptions	body		[]SubscriptionEditable	true	"Subscriptions"
// @Router			/v1/subscriptions [post]
func CreateSubscriptions(c *gin.Context) {
	var editables []SubscriptionEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SubscriptionCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := SubscriptionCreateResponse{}

	for _, editable := range editables {
		subscription := editable.model()

		err = models.DB.Create(&subscription).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newSubscription(c, subscription)
		r.Data = append(r.Data, SubscriptionResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get subscriptions
// @Description	Returns a list of subscriptions
// @Tags			Subscriptions
// @Produce		json
// @Success		200	{object}	SubscriptionListResponse
// @Failure		400	{object}	SubscriptionListResponse
// @Failure		500	{object}	SubscriptionListResponse
// @Router			/v1/subscriptions [get]
// @Param			name		query	string	false	"Filter by name"
// @Param			category	query	string	false	"Filter by category ID"
// @Param			frequency	query	string	false	"Filter by billing cadence"
// @Param			status		query	string	false	"Filter by lifecycle state"
// @Param			search		query	string	false	"Search for this text in the name"
// @Param			offset		query	uint	false	"The offset of the first subscription returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of subscriptions to return. Defaults to 50."
func GetSubscriptions(c *gin.Context) {
	var filter SubscriptionQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	filterModel, err := filter.model()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubscriptionListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.
		Order("name ASC").
		Where(&filterModel, queryFields...)

	q = stringFilter(q, setFields, "Name", "name", filter.Name)
	q = searchFilter(models.DB, q, filter.Search, "name")

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 subscriptions and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var subscriptions []models.Subscription
	err = q.Find(&subscriptions).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubscriptionListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SubscriptionListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Subscription, 0)
	for _, subscription := range subscriptions {
		data = append(data, newSubscription(c, subscription))
	}

	c.JSON(http.StatusOK, SubscriptionListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get subscription
// @Description	Returns a specific subscription
// @Tags			Subscriptions
// @Produce		json
// @Success		200	{object}	SubscriptionResponse
// @Failure		400	{object}	SubscriptionResponse
// @Failure		404	{object}	SubscriptionResponse
// @Failure		500	{object}	SubscriptionResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/subscriptions/{id} [get]
func GetSubscription(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubscriptionResponse{
			Error: &s,
		})
		return
	}

	var subscription models.Subscription
	err = models.DB.First(&subscription, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubscriptionResponse{
			Error: &s,
		})
		return
	}

	data := newSubscription(c, subscription)
	c.JSON(http.StatusOK, SubscriptionResponse{Data: &data})
}

// @Summary		Update subscription
// @Description	Update an existing subscription. Only values to be updated need to be specified.
// @Tags			Subscriptions
// @Accept			json
// @Produce		json
// @Success		200				{object}	SubscriptionResponse
// @Failure		400				{object}	SubscriptionResponse
// @Failure		404				{object}	SubscriptionResponse
// @Failure		500				{object}	SubscriptionResponse
// @Param			id				path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			subscription	body		SubscriptionEditable	true	"Subscription"
// @Router			/v1/subscriptions/{id} [patch]
func UpdateSubscription(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubscriptionResponse{
			Error: &s,
		})
		return
	}

	var subscription models.Subscription
	err = models.DB.First(&subscription, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubscriptionResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, SubscriptionEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubscriptionResponse{
			Error: &s,
		})
		return
	}

	// Status transitions only happen through the pause, resume and cancel
	// endpoints, which enforce the lifecycle.
	for _, field := range updateFields {
		if field == "Status" {
			s := models.ErrSubscriptionStatusNotEditable.Error()
			c.JSON(status(models.ErrSubscriptionStatusNotEditable), SubscriptionResponse{
				Error: &s,
			})
			return
		}
	}

	var data SubscriptionEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubscriptionResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&subscription).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubscriptionResponse{
			Error: &s,
		})
		return
	}

	r := newSubscription(c, subscription)
	c.JSON(http.StatusOK, SubscriptionResponse{Data: &r})
}

// @Summary		Delete subscription
// @Description	Deletes a subscription
// @Tags			Subscriptions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/subscriptions/{id} [delete]
func DeleteSubscription(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var subscription models.Subscription
	err = models.DB.First(&subscription, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&subscription).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// transitionSubscription loads the subscription from the URI, applies the
// transition and responds with the updated resource.
func transitionSubscription(c *gin.Context, transition func(*models.Subscription, *gorm.DB) error) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubscriptionResponse{
			Error: &s,
		})
		return
	}

	var subscription models.Subscription
	err = models.DB.First(&subscription, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubscriptionResponse{
			Error: &s,
		})
		return
	}

	err = transition(&subscription, models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubscriptionResponse{
			Error: &s,
		})
		return
	}

	data := newSubscription(c, subscription)
	c.JSON(http.StatusOK, SubscriptionResponse{Data: &data})
}

// @Summary		Pause subscription
// @Description	Pauses an active subscription. Paused subscriptions do not count towards any dashboard aggregate.
// @Tags			Subscriptions
// @Produce		json
// @Success		200	{object}	SubscriptionResponse
// @Failure		400	{object}	SubscriptionResponse
// @Failure		404	{object}	SubscriptionResponse
// @Failure		500	{object}	SubscriptionResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/subscriptions/{id}/pause [post]
func PauseSubscription(c *gin.Context) {
	transitionSubscription(c, (*models.Subscription).Pause)
}

// @Summary		Resume subscription
// @Description	Resumes a paused subscription
// @Tags			Subscriptions
// @Produce		json
// @Success		200	{object}	SubscriptionResponse
// @Failure		400	{object}	SubscriptionResponse
// @Failure		404	{object}	SubscriptionResponse
// @Failure		500	{object}	SubscriptionResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/subscriptions/{id}/resume [post]
func ResumeSubscription(c *gin.Context) {
	transitionSubscription(c, (*models.Subscription).Resume)
}

// @Summary		Cancel subscription
// @Description	Cancels a subscription. Cancelling is final, a cancelled subscription cannot be resumed.
// @Tags			Subscriptions
// @Produce		json
// @Success		200	{object}	SubscriptionResponse
// @Failure		400	{object}	SubscriptionResponse
// @Failure		404	{object}	SubscriptionResponse
// @Failure		500	{object}	SubscriptionResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/subscriptions/{id}/cancel [post]
func CancelSubscription(c *gin.Context) {
	transitionSubscription(c, (*models.Subscription).Cancel)
}
