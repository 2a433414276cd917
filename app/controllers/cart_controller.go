package controllers

import (
	"net/http"

	"github.com/Bamimore2000/borokini/app/cart"
	"github.com/Bamimore2000/borokini/app/repositories"
	"github.com/Bamimore2000/borokini/pkg/bind"
	"github.com/Bamimore2000/borokini/pkg/response"
	"github.com/Bamimore2000/borokini/pkg/session"
	"github.com/Bamimore2000/borokini/pkg/validate"
)

// cartLineInput addresses one cart line. Size is part of the line identity,
// so the same product in two sizes is two lines.
type cartLineInput struct {
	ProductID    string `json:"productId" validate:"required"`
	SelectedSize string `json:"selectedSize"`
}

type cartAddInput struct {
	ProductID    string `json:"productId" validate:"required"`
	Quantity     int    `json:"quantity"`
	SelectedSize string `json:"selectedSize"`
}

type cartQuantityInput struct {
	ProductID    string `json:"productId" validate:"required"`
	// Zero is a meaningful quantity (it removes the line), so no required rule.
	Quantity     int    `json:"quantity"  validate:"gte=0"`
	SelectedSize string `json:"selectedSize"`
}

// CartController exposes the session cart over HTTP. Every mutation is
// applied to the cart bound to the caller's session and written through to
// the cart store.
type CartController struct {
	store    cart.Store
	products *repositories.ProductRepository
}

func NewCartController(store cart.Store) *CartController {
	return &CartController{
		store:    store,
		products: repositories.NewProductRepository(),
	}
}

func (c *CartController) cart(r *http.Request) *cart.Cart {
	return cart.New(c.store, session.FromCtx(r).ID())
}

func (c *CartController) respond(w http.ResponseWriter, crt *cart.Cart) {
	response.Success(w, map[string]interface{}{
		"items":    crt.Items(),
		"isOpen":   crt.IsOpen(),
		"subtotal": crt.Subtotal(),
		"count":    crt.Count(),
	})
}

// Show returns the current cart.
func (c *CartController) Show(w http.ResponseWriter, r *http.Request) {
	c.respond(w, c.cart(r))
}

// AddItem merges a product into the cart. The item snapshot (name, price,
// image) is taken from the catalog at add time.
func (c *CartController) AddItem(w http.ResponseWriter, r *http.Request) {
	var in cartAddInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	} else if validate.HasErrors(errs) {
		response.ValidationError(w, errs)
		return
	}

	product, err := c.products.FindByID(in.ProductID)
	if err != nil {
		fail(w, r, err)
		return
	}

	item := cart.Item{
		ProductID:    product.ID,
		Name:         product.Name,
		Price:        product.Price,
		Category:     product.Category,
		Stock:        product.Stock,
		Slug:         product.Slug,
		SelectedSize: in.SelectedSize,
	}
	if len(product.Images) > 0 {
		item.Image = product.Images[0]
	}

	crt := c.cart(r)
	crt.AddItem(item, in.Quantity)
	c.respond(w, crt)
}

// UpdateItem sets an absolute quantity; zero removes the line.
func (c *CartController) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var in cartQuantityInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	} else if validate.HasErrors(errs) {
		response.ValidationError(w, errs)
		return
	}

	crt := c.cart(r)
	crt.UpdateQuantity(in.ProductID, in.Quantity, in.SelectedSize)
	c.respond(w, crt)
}

// RemoveItem drops a line entirely.
func (c *CartController) RemoveItem(w http.ResponseWriter, r *http.Request) {
	var in cartLineInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	} else if validate.HasErrors(errs) {
		response.ValidationError(w, errs)
		return
	}

	crt := c.cart(r)
	crt.RemoveItem(in.ProductID, in.SelectedSize)
	c.respond(w, crt)
}

// IncreaseItem bumps a line's quantity by one.
func (c *CartController) IncreaseItem(w http.ResponseWriter, r *http.Request) {
	var in cartLineInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	} else if validate.HasErrors(errs) {
		response.ValidationError(w, errs)
		return
	}

	crt := c.cart(r)
	crt.IncreaseQuantity(in.ProductID, in.SelectedSize)
	c.respond(w, crt)
}

// DecreaseItem lowers a line's quantity by one; zero removes it.
func (c *CartController) DecreaseItem(w http.ResponseWriter, r *http.Request) {
	var in cartLineInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	} else if validate.HasErrors(errs) {
		response.ValidationError(w, errs)
		return
	}

	crt := c.cart(r)
	crt.DecreaseQuantity(in.ProductID, in.SelectedSize)
	c.respond(w, crt)
}

// Clear empties the cart.
func (c *CartController) Clear(w http.ResponseWriter, r *http.Request) {
	crt := c.cart(r)
	crt.Clear()
	c.respond(w, crt)
}

// Open flips the drawer flag on without touching items.
func (c *CartController) Open(w http.ResponseWriter, r *http.Request) {
	crt := c.cart(r)
	crt.Open()
	c.respond(w, crt)
}

// Close flips the drawer flag off.
func (c *CartController) Close(w http.ResponseWriter, r *http.Request) {
	crt := c.cart(r)
	crt.Close()
	c.respond(w, crt)
}
