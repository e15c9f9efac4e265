// Package handler contains the echo handlers of the API delivery.
package handler

import (
	"log/slog"
	"net/http"

	"addressbook/internal/delivery/api/response"
	domainerrors "addressbook/internal/domain/errors"
	"addressbook/internal/domain/optional"
	"addressbook/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	msgInvalidAddressID = "Invalid address ID"
	msgInvalidBody      = "Invalid request body"
)

// AddressHandlerParams holds dependencies for AddressHandler, injected by Fx.
type AddressHandlerParams struct {
	fx.In

	AddressUC usecase.AddressUsecase
	Logger    *slog.Logger
}

// AddressHandler holds dependencies for address-related handlers
type AddressHandler struct {
	addressUC usecase.AddressUsecase
	logger    *slog.Logger
}

// NewAddressHandler is the constructor for AddressHandler
func NewAddressHandler(params AddressHandlerParams) *AddressHandler {
	return &AddressHandler{
		addressUC: params.AddressUC,
		logger:    params.Logger,
	}
}

// CreateAddressRequest represents the request body for creating an address
type CreateAddressRequest struct {
	Door      *string  `json:"door" validate:"omitnil,max=255"`
	Street    string   `json:"street" validate:"required,max=255"`
	City      string   `json:"city" validate:"required,max=255"`
	State     string   `json:"state" validate:"required,max=255"`
	Country   string   `json:"country" validate:"required,max=255"`
	Zip       string   `json:"zip" validate:"required,max=32"`
	Latitude  *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
}

// UpdateAddressRequest represents the request body for a partial address update.
// Missing and null fields are left unchanged.
type UpdateAddressRequest struct {
	Door      optional.Value[string]  `json:"door" validate:"omitnil,max=255"`
	Street    optional.Value[string]  `json:"street" validate:"omitnil,min=1,max=255"`
	City      optional.Value[string]  `json:"city" validate:"omitnil,min=1,max=255"`
	State     optional.Value[string]  `json:"state" validate:"omitnil,min=1,max=255"`
	Country   optional.Value[string]  `json:"country" validate:"omitnil,min=1,max=255"`
	Zip       optional.Value[string]  `json:"zip" validate:"omitnil,min=1,max=32"`
	Latitude  optional.Value[float64] `json:"latitude" validate:"omitnil,gte=-90,lte=90"`
	Longitude optional.Value[float64] `json:"longitude" validate:"omitnil,gte=-180,lte=180"`
}

// CreateAddress handles creating a new address
func (h *AddressHandler) CreateAddress(c echo.Context) error {
	var req CreateAddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, msgInvalidBody)
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	input := &usecase.CreateAddressInput{
		Door:      req.Door,
		Street:    req.Street,
		City:      req.City,
		State:     req.State,
		Country:   req.Country,
		Zip:       req.Zip,
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
	}

	details, err := h.addressUC.CreateAddress(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newAddressResponse(details))
}

// ListAddresses handles paging through addresses with the skip and limit query parameters
func (h *AddressHandler) ListAddresses(c echo.Context) error {
	var input usecase.ListAddressesInput
	var skip, limit int

	binder := echo.QueryParamsBinder(c).
		Int("skip", &skip).
		Int("limit", &limit)
	if err := binder.BindError(); err != nil {
		return response.BadRequest(c, "skip and limit must be integers")
	}

	if c.QueryParams().Has("skip") {
		input.Skip = optional.Of(skip)
	}
	if c.QueryParams().Has("limit") {
		input.Limit = optional.Of(limit)
	}

	details, err := h.addressUC.ListAddresses(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newAddressResponses(details))
}

// FindAddressesWithinRange handles the latitude/longitude/radius range query
func (h *AddressHandler) FindAddressesWithinRange(c echo.Context) error {
	var query usecase.RangeQuery

	binder := echo.QueryParamsBinder(c).
		MustFloat64("latitude", &query.Latitude).
		MustFloat64("longitude", &query.Longitude).
		MustFloat64("radius", &query.RadiusKm)
	if err := binder.BindError(); err != nil {
		return response.BadRequest(c, "latitude, longitude and radius are required numbers")
	}

	details, err := h.addressUC.FindAddressesWithinRange(c.Request().Context(), &query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newAddressResponses(details))
}

// GetAddress handles fetching one address with its users
func (h *AddressHandler) GetAddress(c echo.Context) error {
	addressID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, msgInvalidAddressID)
	}

	details, err := h.addressUC.GetAddress(c.Request().Context(), addressID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newAddressResponse(details))
}

// UpdateAddress handles a partial address update
func (h *AddressHandler) UpdateAddress(c echo.Context) error {
	addressID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, msgInvalidAddressID)
	}

	var req UpdateAddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, msgInvalidBody)
	}

	if err := c.Validate(&req); err != nil {
		// A missing address is reported before anything wrong with the body.
		if _, findErr := h.addressUC.GetAddress(c.Request().Context(), addressID); domainerrors.IsNotFound(findErr) {
			return response.HandleAppError(c, findErr)
		}

		return response.HandleAppError(c, err)
	}

	input := &usecase.UpdateAddressInput{
		Door:      req.Door,
		Street:    req.Street,
		City:      req.City,
		State:     req.State,
		Country:   req.Country,
		Zip:       req.Zip,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}

	details, err := h.addressUC.UpdateAddress(c.Request().Context(), addressID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newAddressResponse(details))
}

// DeleteAddress handles removing an address together with its users
func (h *AddressHandler) DeleteAddress(c echo.Context) error {
	addressID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, msgInvalidAddressID)
	}

	details, err := h.addressUC.DeleteAddress(c.Request().Context(), addressID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newAddressResponse(details))
}

// pathID reads a positive integer path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	var id int64
	if err := echo.PathParamsBinder(c).MustInt64(name, &id).BindError(); err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id must be positive")
	}

	return id, nil
}
