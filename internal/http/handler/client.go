package handler

import (
	"net/http"
	"strconv"
	"strings"

	"client-service/internal/domain/client"
	"client-service/pkg/validator"

	"github.com/labstack/echo/v4"
)

type ClientHandler struct {
	directory ClientDirectory
}

func NewClientHandler(directory ClientDirectory) *ClientHandler {
	return &ClientHandler{directory: directory}
}

type CreateClientRequest struct {
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Email     string   `json:"email"`
	Phones    []string `json:"phones"`
}

type CreateClientResponse struct {
	Client        *client.Client `json:"client"`
	SkippedPhones []string       `json:"skipped_phones,omitempty"`
}

type UpdateClientRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
}

type PhoneRequest struct {
	PhoneNumber string `json:"phone_number"`
}

func (h *ClientHandler) CreateClient(c echo.Context) error {
	var req CreateClientRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return err
	}

	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Email = strings.TrimSpace(req.Email)

	if err := validator.Name(queryFirstName, req.FirstName); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	if err := validator.Name(queryLastName, req.LastName); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	if err := validator.Email(req.Email); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	for _, number := range req.Phones {
		if err := validator.PhoneNumber(number); err != nil {
			return respondError(c, http.StatusBadRequest, err.Error())
		}
	}

	created, skipped, err := h.directory.CreateClient(c.Request().Context(), client.CreateClientInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phones:    req.Phones,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, CreateClientResponse{
		Client:        created,
		SkippedPhones: skipped,
	})
}

func (h *ClientHandler) GetClient(c echo.Context) error {
	id, err := parseClientID(c)
	if err != nil {
		return respondError(c, http.StatusBadRequest, msgInvalidClientID)
	}

	found, err := h.directory.GetClient(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, found)
}

func (h *ClientHandler) ListClients(c echo.Context) error {
	clients, err := h.directory.ListClients(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, clients)
}

// SearchClients matches each supplied query parameter as a
// case-insensitive substring. No parameters means an empty result,
// not a full listing.
func (h *ClientHandler) SearchClients(c echo.Context) error {
	filter := client.SearchFilter{
		FirstName: queryFilter(c, queryFirstName),
		LastName:  queryFilter(c, queryLastName),
		Email:     queryFilter(c, queryEmail),
		Phone:     queryFilter(c, queryPhone),
	}

	clients, err := h.directory.SearchClients(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, clients)
}

func (h *ClientHandler) UpdateClient(c echo.Context) error {
	id, err := parseClientID(c)
	if err != nil {
		return respondError(c, http.StatusBadRequest, msgInvalidClientID)
	}

	var req UpdateClientRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return err
	}

	if req.Email != nil {
		if err := validator.Email(*req.Email); err != nil {
			return respondError(c, http.StatusBadRequest, err.Error())
		}
	}

	if err := h.directory.UpdateClient(c.Request().Context(), id, client.UpdateClientInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}); err != nil {
		return err
	}

	updated, err := h.directory.GetClient(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, updated)
}

func (h *ClientHandler) DeleteClient(c echo.Context) error {
	id, err := parseClientID(c)
	if err != nil {
		return respondError(c, http.StatusBadRequest, msgInvalidClientID)
	}

	if err := h.directory.DeleteClient(c.Request().Context(), id); err != nil {
		return err
	}

	return respondMessage(c, http.StatusOK, msgClientDeleted)
}

func (h *ClientHandler) AddPhone(c echo.Context) error {
	id, err := parseClientID(c)
	if err != nil {
		return respondError(c, http.StatusBadRequest, msgInvalidClientID)
	}

	var req PhoneRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return err
	}

	req.PhoneNumber = strings.TrimSpace(req.PhoneNumber)
	if err := validator.PhoneNumber(req.PhoneNumber); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	phone, err := h.directory.AddPhone(c.Request().Context(), id, req.PhoneNumber)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, phone)
}

func (h *ClientHandler) DeletePhone(c echo.Context) error {
	id, err := parseClientID(c)
	if err != nil {
		return respondError(c, http.StatusBadRequest, msgInvalidClientID)
	}

	var req PhoneRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return err
	}

	if err := h.directory.DeletePhone(c.Request().Context(), id, strings.TrimSpace(req.PhoneNumber)); err != nil {
		return err
	}

	return respondMessage(c, http.StatusOK, msgPhoneDeleted)
}

func parseClientID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param(paramID), 10, 64)
}

func queryFilter(c echo.Context, name string) *string {
	if !c.QueryParams().Has(name) {
		return nil
	}
	value := c.QueryParam(name)
	return &value
}
