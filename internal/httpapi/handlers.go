package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/OssiLV/uit-ecommerce/internal/domain"
)

type addCartItemRequest struct {
	VariantID uuid.UUID `json:"variantId" binding:"required"`
	Quantity  int32     `json:"quantity" binding:"required"`
}

type cartItemResponse struct {
	ID          uuid.UUID `json:"id"`
	VariantID   uuid.UUID `json:"variantId"`
	ProductID   uuid.UUID `json:"productId"`
	ProductName string    `json:"productName"`
	Color       string    `json:"color"`
	Size        string    `json:"size"`
	Quantity    int32     `json:"quantity"`
	Price       string    `json:"price"`
	Subtotal    string    `json:"subtotal"`
}

type cartResponse struct {
	TotalAmount string             `json:"totalAmount"`
	ItemCount   int                `json:"itemCount"`
	Items       []cartItemResponse `json:"items"`
}

func (s *Server) getCart(c *gin.Context) {
	cart, err := s.carts.GetCart(c.Request.Context(), currentUser(c))
	if err != nil {
		writeError(c, err)
		return
	}

	resp, err := mapCartResponse(cart)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) addCartItem(c *gin.Context) {
	var req addCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, domain.ValidationError{Field: "body", Reason: err.Error()})
		return
	}

	cart, err := s.carts.AddItem(c.Request.Context(), currentUser(c), req.VariantID, req.Quantity)
	if err != nil {
		writeError(c, err)
		return
	}

	resp, err := mapCartResponse(cart)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) removeCartItem(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeError(c, domain.ValidationError{Field: "id", Reason: "must be a UUID"})
		return
	}

	if err := s.carts.RemoveItem(c.Request.Context(), currentUser(c), itemID); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

type placeOrderRequest struct {
	ReceiverName    string `json:"receiverName" binding:"required"`
	ShippingAddress string `json:"shippingAddress" binding:"required"`
	PhoneNumber     string `json:"phoneNumber" binding:"required"`
	PaymentMethod   string `json:"paymentMethod" binding:"required"`
}

type orderItemResponse struct {
	ProductID   uuid.UUID `json:"productId"`
	ProductName string    `json:"productName"`
	Color       string    `json:"color"`
	Size        string    `json:"size"`
	Quantity    int32     `json:"quantity"`
	Price       string    `json:"price"`
}

type orderResponse struct {
	ID              uuid.UUID           `json:"id"`
	OrderDate       time.Time           `json:"orderDate"`
	TotalAmount     string              `json:"totalAmount"`
	Currency        string              `json:"currency"`
	Status          string              `json:"status"`
	PaymentMethod   string              `json:"paymentMethod"`
	ShippingAddress string              `json:"shippingAddress"`
	DeliveryDate    *time.Time          `json:"deliveryDate,omitempty"`
	CancelReason    *string             `json:"cancelReason,omitempty"`
	Items           []orderItemResponse `json:"items"`
}

func (s *Server) placeOrder(c *gin.Context) {
	var req placeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, domain.ValidationError{Field: "body", Reason: err.Error()})
		return
	}

	paymentMethod, err := domain.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		writeError(c, err)
		return
	}

	shipping := domain.ShippingInfo{
		ReceiverName: req.ReceiverName,
		Address:      req.ShippingAddress,
		Phone:        req.PhoneNumber,
	}

	order, err := s.orders.PlaceOrder(c.Request.Context(), currentUser(c), shipping, paymentMethod)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, mapOrderResponse(order))
}

func (s *Server) listMyOrders(c *gin.Context) {
	orders, err := s.orders.GetMyOrders(c.Request.Context(), currentUser(c))
	if err != nil {
		writeError(c, err)
		return
	}

	resp := make([]orderResponse, 0, len(orders))
	for _, order := range orders {
		resp = append(resp, mapOrderResponse(order))
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) getOrder(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeError(c, domain.ValidationError{Field: "id", Reason: "must be a UUID"})
		return
	}

	order, err := s.orders.GetOrder(c.Request.Context(), currentUser(c), orderID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapOrderResponse(order))
}

type cancelOrderRequest struct {
	Reason string `json:"reason" binding:"required"`
}

func (s *Server) cancelOrder(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeError(c, domain.ValidationError{Field: "id", Reason: "must be a UUID"})
		return
	}

	var req cancelOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, domain.ValidationError{Field: "body", Reason: err.Error()})
		return
	}

	order, err := s.orders.CancelOrder(c.Request.Context(), currentUser(c), orderID, req.Reason)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapOrderResponse(order))
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (s *Server) adminUpdateStatus(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeError(c, domain.ValidationError{Field: "id", Reason: "must be a UUID"})
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, domain.ValidationError{Field: "body", Reason: err.Error()})
		return
	}

	status, err := domain.ParseOrderStatus(req.Status)
	if err != nil {
		writeError(c, err)
		return
	}

	order, err := s.orders.AdminUpdateStatus(c.Request.Context(), orderID, status)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapOrderResponse(order))
}

func mapCartResponse(cart domain.Cart) (cartResponse, error) {
	total, err := cart.Total()
	if err != nil {
		return cartResponse{}, err
	}

	resp := cartResponse{
		TotalAmount: total.Amount.StringFixed(2),
		ItemCount:   cart.ItemCount(),
		Items:       make([]cartItemResponse, 0, len(cart.Items)),
	}

	for _, item := range cart.Items {
		resp.Items = append(resp.Items, cartItemResponse{
			ID:          item.ID,
			VariantID:   item.VariantID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Color:       item.Color,
			Size:        item.Size,
			Quantity:    item.Quantity,
			Price:       item.Price.Amount.StringFixed(2),
			Subtotal:    item.Price.Mul(item.Quantity).Amount.StringFixed(2),
		})
	}

	return resp, nil
}

func mapOrderResponse(order domain.Order) orderResponse {
	resp := orderResponse{
		ID:              order.ID,
		OrderDate:       order.OrderDate,
		TotalAmount:     order.Total.Amount.StringFixed(2),
		Currency:        order.Total.Currency.String(),
		Status:          string(order.Status),
		PaymentMethod:   string(order.PaymentMethod),
		ShippingAddress: order.Shipping.Address,
		DeliveryDate:    order.DeliveryDate,
		CancelReason:    order.CancelReason,
		Items:           make([]orderItemResponse, 0, len(order.Items)),
	}

	for _, item := range order.Items {
		resp.Items = append(resp.Items, orderItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Color:       item.Color,
			Size:        item.Size,
			Quantity:    item.Quantity,
			Price:       item.Price.Amount.StringFixed(2),
		})
	}

	return resp
}
