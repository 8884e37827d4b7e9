package weather

import (
	"context"
	"errors"
	"fmt"

	"weather-api/cmd/server/handlers/handlerutil"
	"weather-api/cmd/server/handlers/httperr"
	"weather-api/internal/config"
	"weather-api/internal/services/weather"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Service defines the interface for weather service
type Service interface {
	List(ctx context.Context) ([]*weather.Reading, error)
	Page(ctx context.Context, page int) (*weather.PageResult, error)
	MaxRainRecent(ctx context.Context, months int) ([]*weather.Reading, error)
	MaxRainForDevice(ctx context.Context, device string) ([]weather.RainPeak, error)
	ReadingAt(ctx context.Context, device, day string) (*weather.Snapshot, error)
	MaxTemperature(ctx context.Context, start, end string) ([]weather.DeviceMaxTemperature, error)
	Get(ctx context.Context, id string) (*weather.Reading, error)
	Create(ctx context.Context, req weather.CreateRequest) (*weather.Reading, error)
	CreateMany(ctx context.Context, reqs []weather.CreateRequest) ([]*weather.Reading, error)
	Update(ctx context.Context, req weather.UpdateRequest) (*weather.Reading, error)
	UpdatePrecipitation(ctx context.Context, req weather.PrecipitationRequest) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

// Handlers contains the weather HTTP handlers
type Handlers struct {
	service   Service
	validator *validator.Validate
	config    config.Config
}

// NewHandlers creates new weather handlers
func NewHandlers(service Service, validator *validator.Validate, cfg config.Config) *Handlers {
	return &Handlers{
		service:   service,
		validator: validator,
		config:    cfg,
	}
}

// List handles listing readings
// @Summary List weather readings
// @Tags weather
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} ReadingsResponse
// @Failure 401 {object} httperr.E
// @Router /weather/all [get]
func (h *Handlers) List(c *fiber.Ctx) error {
	rs, err := h.service.List(c.UserContext())
	if err != nil {
		return h.fail(c, err, "List", "")
	}

	msg := fmt.Sprintf("Get all weather readings. (Limited to %d)", h.config.ListLimit)
	return c.JSON(ReadingsResponse{Envelope: handlerutil.OK(msg), Weather: rs})
}

// Page handles paginated listing
// @Summary List one page of weather readings
// @Description Pages are 0-based.
// @Tags weather
// @Produce json
// @Security ApiKeyAuth
// @Param page path int true "Page number" minimum(0)
// @Success 200 {object} PageResponse
// @Failure 400 {object} httperr.E
// @Router /weather/paged/{page} [get]
func (h *Handlers) Page(c *fiber.Ctx) error {
	var p PageParams
	if err := handlerutil.ParseAndValidateParams(c, &p, h.validator, "Page"); err != nil {
		return err
	}

	res, err := h.service.Page(c.UserContext(), p.Page)
	if err != nil {
		return h.fail(c, err, "Page", "")
	}

	return c.JSON(PageResponse{
		Envelope:   handlerutil.OK(fmt.Sprintf("Get paginated weather readings on page %d of %d", res.Page, res.TotalPages)),
		Weather:    res.Readings,
		Page:       res.Page,
		TotalCount: res.TotalCount,
		TotalPages: res.TotalPages,
	})
}

// MaxRainRecent handles the reference station rainfall query
// @Summary Wettest readings of the reference station
// @Description The ten readings with the most precipitation over the last months (30 days each).
// @Tags weather
// @Produce json
// @Security ApiKeyAuth
// @Param months path int true "Window in months" minimum(1)
// @Success 200 {object} ReadingsResponse
// @Failure 400 {object} httperr.E
// @Router /weather/Woodford/{months} [get]
func (h *Handlers) MaxRainRecent(c *fiber.Ctx) error {
	var p MonthsParams
	if err := handlerutil.ParseAndValidateParams(c, &p, h.validator, "MaxRainRecent"); err != nil {
		return err
	}

	rs, err := h.service.MaxRainRecent(c.UserContext(), p.Months)
	if err != nil {
		return h.fail(c, err, "MaxRainRecent", "")
	}

	msg := fmt.Sprintf("Get max rain of the last %d month(s) from all weather readings (limited to 10)", p.Months)
	return c.JSON(ReadingsResponse{Envelope: handlerutil.OK(msg), Weather: rs})
}

// MaxRainForDevice handles the per-device rainfall query
// @Summary Wettest reading of a station
// @Tags weather
// @Produce json
// @Security ApiKeyAuth
// @Param deviceName path string true "Device name"
// @Success 200 {object} RainPeakResponse
// @Failure 404 {object} httperr.E
// @Router /weather/deviceName/{deviceName} [get]
func (h *Handlers) MaxRainForDevice(c *fiber.Ctx) error {
	var p DeviceParams
	if err := handlerutil.ParseAndValidateParams(c, &p, h.validator, "MaxRainForDevice"); err != nil {
		return err
	}

	peaks, err := h.service.MaxRainForDevice(c.UserContext(), p.DeviceName)
	if err != nil {
		return h.fail(c, err, "MaxRainForDevice", fmt.Sprintf("No readings from %s found", p.DeviceName))
	}

	msg := fmt.Sprintf("Get max rain from the last %d months from the %s", h.config.RainWindowMonths, p.DeviceName)
	return c.JSON(RainPeakResponse{Envelope: handlerutil.OK(msg), Weather: peaks})
}

// ReadingAt handles the device/day lookup
// @Summary Reading of a station on a day
// @Tags weather
// @Produce json
// @Security ApiKeyAuth
// @Param deviceName query string true "Device name"
// @Param date query string true "UTC day (YYYY-MM-DD)"
// @Success 200 {object} SnapshotResponse
// @Failure 400 {object} httperr.E
// @Failure 404 {object} httperr.E
// @Router /weather/spaceTime [get]
func (h *Handlers) ReadingAt(c *fiber.Ctx) error {
	var q SpaceTimeQuery
	if err := handlerutil.ParseAndValidateQuery(c, &q, h.validator, "ReadingAt"); err != nil {
		return err
	}

	snap, err := h.service.ReadingAt(c.UserContext(), q.DeviceName, q.Date)
	if err != nil {
		return h.fail(c, err, "ReadingAt", httperr.ErrNotFound.Message)
	}

	msg := fmt.Sprintf("Weather data for %s at %s", q.DeviceName, q.Date)
	return c.JSON(SnapshotResponse{Envelope: handlerutil.OK(msg), Weather: snap})
}

// MaxTemperature handles the per-station temperature report
// @Summary Maximum temperature per station
// @Description Hottest reading of every station between startDate (inclusive) and endDate (exclusive).
// @Tags weather
// @Produce json
// @Security ApiKeyAuth
// @Param startDate query string true "UTC day (YYYY-MM-DD)"
// @Param endDate query string true "UTC day (YYYY-MM-DD)"
// @Success 200 {object} MaxTemperatureResponse
// @Failure 400 {object} httperr.E
// @Failure 404 {object} httperr.E
// @Router /weather/max-temperature [get]
func (h *Handlers) MaxTemperature(c *fiber.Ctx) error {
	var q RangeQuery
	if err := handlerutil.ParseAndValidateQuery(c, &q, h.validator, "MaxTemperature"); err != nil {
		return err
	}

	rows, err := h.service.MaxTemperature(c.UserContext(), q.StartDate, q.EndDate)
	if err != nil {
		return h.fail(c, err, "MaxTemperature", httperr.ErrNotFound.Message)
	}

	msg := fmt.Sprintf("Maximum temperature recorded for all stations between %s and %s", q.StartDate, q.EndDate)
	return c.JSON(MaxTemperatureResponse{Envelope: handlerutil.OK(msg), Results: rows})
}

// Get handles fetching one reading
// @Summary Get a weather reading by ID
// @Tags weather
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Reading ID"
// @Success 200 {object} ReadingResponse
// @Failure 400 {object} httperr.E
// @Failure 404 {object} httperr.E
// @Router /weather/specificReading/{id} [get]
func (h *Handlers) Get(c *fiber.Ctx) error {
	var p IDParams
	if err := handlerutil.ParseAndValidateParams(c, &p, h.validator, "Get"); err != nil {
		return err
	}

	r, err := h.service.Get(c.UserContext(), p.ID)
	if err != nil {
		return h.fail(c, err, "Get", fmt.Sprintf("No Weather Reading with ID %s found", p.ID))
	}

	return c.JSON(ReadingResponse{Envelope: handlerutil.OK("Get weather reading by ID"), Weather: r})
}

// Create handles storing one reading
// @Summary Create a weather reading
// @Description The server stamps the reading time.
// @Tags weather
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body weather.CreateRequest true "Reading"
// @Success 200 {object} ReadingResponse
// @Failure 400 {object} httperr.E
// @Router /weather/createOne [post]
func (h *Handlers) Create(c *fiber.Ctx) error {
	var req weather.CreateRequest
	if err := handlerutil.ParseAndValidateBody(c, &req, h.validator, "Create"); err != nil {
		return err
	}

	r, err := h.service.Create(c.UserContext(), req)
	if err != nil {
		return h.fail(c, err, "Create", "")
	}

	return c.JSON(ReadingResponse{Envelope: handlerutil.OK("Created weather reading"), Weather: r})
}

// CreateMany handles storing a batch of readings
// @Summary Create several weather readings
// @Description Nothing is stored when any reading is rejected; errors lists each rejected index.
// @Tags weather
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body []weather.CreateRequest true "Readings"
// @Success 200 {object} ReadingsResponse
// @Failure 400 {object} httperr.E
// @Router /weather/createMany [post]
func (h *Handlers) CreateMany(c *fiber.Ctx) error {
	var reqs []weather.CreateRequest
	if err := handlerutil.ParseBody(c, &reqs, "CreateMany"); err != nil {
		return err
	}
	if len(reqs) == 0 {
		return httperr.BadRequest("At least one weather reading is required")
	}
	if err := handlerutil.ValidateEach(c, reqs, h.validator, "CreateMany"); err != nil {
		return err
	}

	rs, err := h.service.CreateMany(c.UserContext(), reqs)
	if err != nil {
		return h.fail(c, err, "CreateMany", "")
	}

	return c.JSON(ReadingsResponse{Envelope: handlerutil.OK("Created multiple weather readings"), Weather: rs})
}

// Update handles a partial update
// @Summary Update a weather reading
// @Description Only the supplied fields change.
// @Tags weather
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body weather.UpdateRequest true "Update request"
// @Success 200 {object} ReadingResponse
// @Failure 400 {object} httperr.E
// @Failure 404 {object} httperr.E
// @Router /weather/update [patch]
func (h *Handlers) Update(c *fiber.Ctx) error {
	var req weather.UpdateRequest
	if err := handlerutil.ParseAndValidateBody(c, &req, h.validator, "Update"); err != nil {
		return err
	}

	r, err := h.service.Update(c.UserContext(), req)
	if err != nil {
		return h.fail(c, err, "Update", fmt.Sprintf("No Weather Reading with ID %s found", req.ID))
	}

	return c.JSON(ReadingResponse{
		Envelope: handlerutil.OK(fmt.Sprintf("Updated weather reading with ID %s", req.ID)),
		Weather:  r,
	})
}

// UpdatePrecipitation handles the precipitation correction
// @Summary Update the precipitation of a reading
// @Tags weather
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body weather.PrecipitationRequest true "Precipitation update"
// @Success 200 {object} PrecipitationResponse
// @Failure 400 {object} httperr.E
// @Failure 404 {object} httperr.E
// @Router /entries/updatePrecipitation [put]
func (h *Handlers) UpdatePrecipitation(c *fiber.Ctx) error {
	var req weather.PrecipitationRequest
	if err := handlerutil.ParseAndValidateBody(c, &req, h.validator, "UpdatePrecipitation"); err != nil {
		return err
	}

	n, err := h.service.UpdatePrecipitation(c.UserContext(), req)
	if err != nil {
		return h.fail(c, err, "UpdatePrecipitation", fmt.Sprintf("No Weather Reading with ID %s found", req.ID))
	}

	return c.JSON(PrecipitationResponse{
		Envelope: handlerutil.OK(fmt.Sprintf("%d entries updated", n)),
		ID:       req.ID,
		Modified: n,
	})
}

// Delete handles removing one reading
// @Summary Delete a weather reading
// @Tags weather
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Reading ID"
// @Success 200 {object} DeletedResponse
// @Failure 400 {object} httperr.E
// @Failure 404 {object} httperr.E
// @Router /weather/delete/{id} [delete]
func (h *Handlers) Delete(c *fiber.Ctx) error {
	var p IDParams
	if err := handlerutil.ParseAndValidateParams(c, &p, h.validator, "Delete"); err != nil {
		return err
	}

	n, err := h.service.Delete(c.UserContext(), p.ID)
	if err != nil {
		return h.fail(c, err, "Delete", fmt.Sprintf("No Weather Reading with ID %s found", p.ID))
	}

	return c.JSON(DeletedResponse{
		Envelope: handlerutil.OK(fmt.Sprintf("%d Weather reading with ID %s was deleted", n, p.ID)),
		Deleted:  n,
	})
}

func (h *Handlers) fail(c *fiber.Ctx, err error, handlerName, notFoundMessage string) error {
	var batch *weather.BatchError
	var reading *weather.MeasurementError
	switch {
	case errors.As(err, &batch):
		return httperr.Fail(httperr.E{
			Status:  fiber.StatusBadRequest,
			Message: "Some weather readings have invalid data.",
			Errors:  batch.Items,
		})
	case errors.As(err, &reading):
		return httperr.BadRequest(reading.Reason)
	case errors.Is(err, weather.ErrInvalidID):
		return httperr.BadRequest("Invalid weather reading ID")
	case errors.Is(err, weather.ErrInvalidDateRange):
		return httperr.BadRequest("End date must be after start date")
	}
	return handlerutil.HandleServiceError(c, err, handlerName, weather.ErrNotFound, notFoundMessage)
}
