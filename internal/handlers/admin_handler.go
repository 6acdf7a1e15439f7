package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/bosesayankolkata/dairyexpress/internal/models"
	"github.com/bosesayankolkata/dairyexpress/internal/services"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes the admin-facing catalog, pincode, account and
// delivery management endpoints.
type AdminHandler struct {
	catalog  services.CatalogService
	accounts services.AccountService
	orders   services.OrderService
	delivery services.DeliveryService
}

func NewAdminHandler(
	catalog services.CatalogService,
	accounts services.AccountService,
	orders services.OrderService,
	delivery services.DeliveryService,
) *AdminHandler {
	return &AdminHandler{
		catalog:  catalog,
		accounts: accounts,
		orders:   orders,
		delivery: delivery,
	}
}

func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrDuplicatePhone),
		errors.Is(err, services.ErrDuplicatePincode),
		errors.Is(err, services.ErrInvalidReason):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// Delivery persons

func (h *AdminHandler) CreateDeliveryPerson(c *gin.Context) {
	var input services.DeliveryPersonInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	person, err := h.accounts.CreateDeliveryPerson(&input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, person)
}

type simplePersonRequest struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Pincode  string `json:"pincode" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// CreateSimpleDeliveryPerson keeps the older minimal registration payload.
func (h *AdminHandler) CreateSimpleDeliveryPerson(c *gin.Context) {
	var req simplePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	person, err := h.accounts.CreateSimpleDeliveryPerson(req.Name, req.Phone, req.Pincode, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, person)
}

func (h *AdminHandler) GetDeliveryPersons(c *gin.Context) {
	persons, err := h.accounts.GetDeliveryPersons()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, persons)
}

func (h *AdminHandler) ResetDeliveryPersonPassword(c *gin.Context) {
	newPassword, err := h.accounts.ResetPassword(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":      "Password reset successfully",
		"new_password": newPassword,
	})
}

// Deliveries

type createDeliveryRequest struct {
	CustomerName     string `json:"customer_name" binding:"required"`
	CustomerAddress  string `json:"customer_address" binding:"required"`
	CustomerPhone    string `json:"customer_phone" binding:"required"`
	CustomerWhatsApp string `json:"customer_whatsapp"`
	CustomerPincode  string `json:"customer_pincode"`
	ProductName      string `json:"product_name" binding:"required"`
	ProductQuantity  string `json:"product_quantity"`
	DeliveryDate     string `json:"delivery_date" binding:"required"`
	DeliveryPersonID string `json:"delivery_person_id" binding:"required"`
}

func (h *AdminHandler) CreateDelivery(c *gin.Context) {
	var req createDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	delivery := &models.Delivery{
		CustomerName:     req.CustomerName,
		CustomerAddress:  req.CustomerAddress,
		CustomerPhone:    req.CustomerPhone,
		CustomerWhatsApp: req.CustomerWhatsApp,
		CustomerPincode:  req.CustomerPincode,
		ProductName:      req.ProductName,
		ProductQuantity:  req.ProductQuantity,
		DeliveryDate:     req.DeliveryDate,
		DeliveryPersonID: req.DeliveryPersonID,
	}
	if err := h.delivery.CreateDelivery(delivery); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, delivery)
}

func (h *AdminHandler) GetDeliveries(c *gin.Context) {
	deliveries, err := h.delivery.GetAllDeliveries()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, deliveries)
}

func (h *AdminHandler) ReassignDelivery(c *gin.Context) {
	newPersonID := c.Query("new_person_id")
	if newPersonID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "new_person_id is required"})
		return
	}

	if err := h.delivery.Reassign(c.Param("id"), newPersonID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Delivery reassigned successfully"})
}

// Catalog

type categoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
}

func (h *AdminHandler) CreateCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	category := &models.Category{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive == nil || *req.IsActive,
	}
	if err := h.catalog.CreateCategory(category); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *AdminHandler) GetCategories(c *gin.Context) {
	categories, err := h.catalog.GetCategories()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *AdminHandler) UpdateCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	update := &models.Category{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive == nil || *req.IsActive,
	}
	if err := h.catalog.UpdateCategory(c.Param("id"), update); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category updated successfully"})
}

type productTypeRequest struct {
	Name        string `json:"name" binding:"required"`
	CategoryID  string `json:"category_id" binding:"required"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
}

func (h *AdminHandler) CreateProductType(c *gin.Context) {
	var req productTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	productType := &models.ProductType{
		Name:        req.Name,
		CategoryID:  req.CategoryID,
		Description: req.Description,
		IsActive:    req.IsActive == nil || *req.IsActive,
	}
	if err := h.catalog.CreateProductType(productType); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, productType)
}

func (h *AdminHandler) GetProductTypes(c *gin.Context) {
	productTypes, err := h.catalog.GetProductTypes()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, productTypes)
}

type characteristicRequest struct {
	Name          string `json:"name" binding:"required"`
	ProductTypeID string `json:"product_type_id" binding:"required"`
	Description   string `json:"description"`
	IsActive      *bool  `json:"is_active"`
}

func (h *AdminHandler) CreateCharacteristic(c *gin.Context) {
	var req characteristicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	characteristic := &models.Characteristic{
		Name:          req.Name,
		ProductTypeID: req.ProductTypeID,
		Description:   req.Description,
		IsActive:      req.IsActive == nil || *req.IsActive,
	}
	if err := h.catalog.CreateCharacteristic(characteristic); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, characteristic)
}

func (h *AdminHandler) GetCharacteristics(c *gin.Context) {
	characteristics, err := h.catalog.GetCharacteristics()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, characteristics)
}

type sizeRequest struct {
	Name             string  `json:"name" binding:"required"`
	Value            string  `json:"value" binding:"required"`
	CharacteristicID string  `json:"characteristic_id" binding:"required"`
	Price            float64 `json:"price" binding:"min=0"`
	IsActive         *bool   `json:"is_active"`
}

func (h *AdminHandler) CreateSize(c *gin.Context) {
	var req sizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	size := &models.Size{
		Name:             req.Name,
		Value:            req.Value,
		CharacteristicID: req.CharacteristicID,
		Price:            req.Price,
		IsActive:         req.IsActive == nil || *req.IsActive,
	}
	if err := h.catalog.CreateSize(size); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, size)
}

func (h *AdminHandler) GetSizes(c *gin.Context) {
	sizes, err := h.catalog.GetSizes()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sizes)
}

// Pincodes

type pinCodeRequest struct {
	Pincode            string   `json:"pincode" binding:"required"`
	AreaName           string   `json:"area_name" binding:"required"`
	IsServiceable      *bool    `json:"is_serviceable"`
	AvailableTimeSlots []string `json:"available_time_slots"`
	DeliveryCharge     float64  `json:"delivery_charge"`
}

func (h *AdminHandler) CreatePinCode(c *gin.Context) {
	var req pinCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	pc := &models.PinCode{
		Pincode:            req.Pincode,
		AreaName:           req.AreaName,
		IsServiceable:      req.IsServiceable == nil || *req.IsServiceable,
		AvailableTimeSlots: models.StringList(req.AvailableTimeSlots),
		DeliveryCharge:     req.DeliveryCharge,
	}
	if err := h.catalog.CreatePinCode(pc); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, pc)
}

func (h *AdminHandler) GetPinCodes(c *gin.Context) {
	pincodes, err := h.catalog.GetPinCodes()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, pincodes)
}

func (h *AdminHandler) UpdatePinCode(c *gin.Context) {
	var req pinCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	update := &models.PinCode{
		Pincode:            req.Pincode,
		AreaName:           req.AreaName,
		IsServiceable:      req.IsServiceable == nil || *req.IsServiceable,
		AvailableTimeSlots: models.StringList(req.AvailableTimeSlots),
		DeliveryCharge:     req.DeliveryCharge,
	}
	if err := h.catalog.UpdatePinCode(c.Param("id"), update); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Pin code updated successfully"})
}

// Customers and orders

func (h *AdminHandler) GetCustomers(c *gin.Context) {
	customers, err := h.orders.GetAllCustomers()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (h *AdminHandler) GetOrders(c *gin.Context) {
	orders, err := h.orders.GetAllOrders()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// Search spans orders and deliveries by date range, delivery person and
// pincode.
func (h *AdminHandler) Search(c *gin.Context) {
	var startDate, endDate *time.Time
	if s := c.Query("start_date"); s != "" {
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "start_date must be YYYY-MM-DD"})
			return
		}
		startDate = &parsed
	}
	if s := c.Query("end_date"); s != "" {
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must be YYYY-MM-DD"})
			return
		}
		endOfDay := parsed.Add(24*time.Hour - time.Nanosecond)
		endDate = &endOfDay
	}

	personID := c.Query("delivery_person_id")
	pincode := c.Query("pincode")

	orders, err := h.orders.Search(startDate, endDate, personID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	deliveries, err := h.delivery.Search(startDate, endDate, personID, pincode)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orders":     orders,
		"deliveries": deliveries,
	})
}
