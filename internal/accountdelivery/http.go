// Package accountdelivery manages delivery layer of accounts.
package accountdelivery

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/account-service/internal/domain"
	"github.com/go-petr/account-service/pkg/errorspkg"
	"github.com/go-petr/account-service/pkg/web"
)

// Service provides service layer interface needed by account delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package accountdelivery
type Service interface {
	Create(ctx context.Context, arg domain.AccountParams) (domain.Account, error)
	Get(ctx context.Context, id int32) (domain.Account, error)
	List(ctx context.Context) ([]domain.Account, error)
	Update(ctx context.Context, id int32, arg domain.AccountParams) (domain.Account, error)
	Delete(ctx context.Context, id int32) error
}

// ErrInvalidID indicates that the id path parameter is not an integer.
var ErrInvalidID = errors.New("ID must be an integer")

// errIDOutOfRange reports an integer id that no stored account can have.
var errIDOutOfRange = errors.New("id out of range")

// Handler facilitates account delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns account handler.
func NewHandler(as Service) Handler {
	return Handler{service: as}
}

// accountRequest is the body of create and update requests.
type accountRequest struct {
	Name        string       `json:"name" binding:"required,max=64"`
	Email       string       `json:"email" binding:"required,email,max=64"`
	Address     string       `json:"address" binding:"required,max=256"`
	PhoneNumber string       `json:"phone_number" binding:"max=32"`
	DateJoined  *domain.Date `json:"date_joined"`
}

func (r accountRequest) params() domain.AccountParams {
	arg := domain.AccountParams{
		Name:        r.Name,
		Email:       r.Email,
		Address:     r.Address,
		PhoneNumber: r.PhoneNumber,
	}

	if r.DateJoined != nil {
		arg.DateJoined = *r.DateJoined
	}

	return arg
}

type idRequest struct {
	ID string `uri:"id" binding:"required"`
}

// bindBody decodes and validates the request body, responding with 400 on failure.
func bindBody(gctx *gin.Context, req *accountRequest) bool {
	if err := gctx.ShouldBindJSON(req); err != nil {
		zerolog.Ctx(gctx.Request.Context()).Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Message(web.BindErrorMsg(err)))

		return false
	}

	return true
}

// bindID parses the id path parameter.
//
// It returns ErrInvalidID for anything that is not an integer and
// errIDOutOfRange for integers outside the id column range.
func bindID(gctx *gin.Context) (int32, error) {
	var req idRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		return 0, ErrInvalidID
	}

	id, err := strconv.ParseInt(req.ID, 10, 32)
	if err != nil {
		zerolog.Ctx(gctx.Request.Context()).Info().Err(err).Send()

		if errors.Is(err, strconv.ErrRange) {
			return 0, errIDOutOfRange
		}

		return 0, ErrInvalidID
	}

	return int32(id), nil
}

// respondIDError writes 404 for out of range ids and 400 otherwise.
func respondIDError(gctx *gin.Context, err error) {
	if errors.Is(err, errIDOutOfRange) {
		gctx.JSON(http.StatusNotFound, web.Message(domain.AccountNotFoundMsg(gctx.Param("id"))))
		return
	}

	gctx.JSON(http.StatusBadRequest, web.Error(ErrInvalidID))
}

// accountURL returns the absolute URL of the account when the request host is known.
func accountURL(r *http.Request, id int32) string {
	path := fmt.Sprintf("/accounts/%d", id)
	if r.Host == "" {
		return path
	}

	scheme := "http"
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}

	return scheme + "://" + r.Host + path
}

// Create handles http request to create account.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	l.Info().Msg("request to create an account")

	var req accountRequest
	if !bindBody(gctx, &req) {
		return
	}

	createdAccount, err := h.service.Create(ctx, req.params())
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.Header("Location", accountURL(gctx.Request, createdAccount.ID))
	gctx.JSON(http.StatusCreated, createdAccount)
}

// List handles http request to list all accounts.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	accounts, err := h.service.List(ctx)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, accounts)
}

// Get handles http request to get account.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	id, err := bindID(gctx)
	if err != nil {
		respondIDError(gctx, err)
		return
	}

	acc, err := h.service.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			gctx.JSON(http.StatusNotFound, web.Message(domain.AccountNotFoundMsg(id)))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, acc)
}

// Update handles http request to replace account fields.
func (h *Handler) Update(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	id, err := bindID(gctx)
	if err != nil {
		respondIDError(gctx, err)
		return
	}

	l.Info().Int32("id", id).Msg("request to update an account")

	var req accountRequest
	if !bindBody(gctx, &req) {
		return
	}

	acc, err := h.service.Update(ctx, id, req.params())
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			gctx.JSON(http.StatusNotFound, web.Message(domain.AccountNotFoundMsg(id)))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, acc)
}

// Delete handles http request to delete account.
func (h *Handler) Delete(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	id, err := bindID(gctx)
	if errors.Is(err, errIDOutOfRange) {
		// No account can have this id; deleting it is a no-op.
		gctx.Status(http.StatusNoContent)
		return
	}

	if err != nil {
		respondIDError(gctx, err)
		return
	}

	l.Info().Int32("id", id).Msg("request to delete an account")

	if err := h.service.Delete(ctx, id); err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.Status(http.StatusNoContent)
}
