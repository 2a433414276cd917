package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Bamimore2000/borokini/app/cart"
	"github.com/Bamimore2000/borokini/app/models"
	"github.com/Bamimore2000/borokini/app/services"
	"github.com/Bamimore2000/borokini/pkg/bind"
	"github.com/Bamimore2000/borokini/pkg/response"
	"github.com/Bamimore2000/borokini/pkg/session"
	"github.com/Bamimore2000/borokini/pkg/validate"
)

type orderStatusInput struct {
	Status string `json:"status" validate:"required,in=pending,paid,shipped,delivered"`
}

type orderTrackingInput struct {
	TrackingNumber string `json:"trackingNumber" validate:"required,max=100"`
	Carrier        string `json:"carrier"        validate:"required,max=100"`
}

// OrderController covers checkout on the public side and order management
// on the admin side.
type OrderController struct {
	orders *services.OrderService
	store  cart.Store
}

func NewOrderController(store cart.Store) *OrderController {
	return &OrderController{
		orders: services.NewOrderService(),
		store:  store,
	}
}

// Checkout creates an order from the posted item tuples and clears the
// session cart on success. No payment is captured here.
func (c *OrderController) Checkout(w http.ResponseWriter, r *http.Request) {
	var in services.CheckoutInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	} else if validate.HasErrors(errs) {
		response.ValidationError(w, errs)
		return
	}

	order, err := c.orders.Checkout(in)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyOrder):
			response.ValidationError(w, map[string]string{"items": "The items field is required."})
		case errors.Is(err, services.ErrUnknownProduct):
			response.NotFound(w)
		default:
			fail(w, r, err)
		}
		return
	}

	cart.New(c.store, session.FromCtx(r).ID()).Clear()
	response.Created(w, order)
}

// Index lists orders for the admin, newest first. ?page= switches to a
// paginated envelope.
func (c *OrderController) Index(w http.ResponseWriter, r *http.Request) {
	if raw := r.URL.Query().Get("page"); raw != "" {
		page, _ := strconv.Atoi(raw)
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		orders, pagination, err := c.orders.Paginate(page, limit)
		if err != nil {
			fail(w, r, err)
			return
		}
		response.Paginated(w, orders, pagination)
		return
	}

	orders, err := c.orders.All()
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, orders)
}

// Show returns one order with its items joined to their products.
func (c *OrderController) Show(w http.ResponseWriter, r *http.Request) {
	order, items, err := c.orders.Detail(chi.URLParam(r, "id"))
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, map[string]interface{}{
		"order": order,
		"items": items,
	})
}

// UpdateStatus overwrites the order status with any member of the enum.
func (c *OrderController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var in orderStatusInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	} else if validate.HasErrors(errs) {
		response.ValidationError(w, errs)
		return
	}

	order, err := c.orders.UpdateStatus(chi.URLParam(r, "id"), models.OrderStatus(in.Status))
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, order)
}

// UpdateTracking sets tracking number and carrier together.
func (c *OrderController) UpdateTracking(w http.ResponseWriter, r *http.Request) {
	var in orderTrackingInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	} else if validate.HasErrors(errs) {
		response.ValidationError(w, errs)
		return
	}

	order, err := c.orders.UpdateTracking(chi.URLParam(r, "id"), in.TrackingNumber, in.Carrier)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, order)
}
