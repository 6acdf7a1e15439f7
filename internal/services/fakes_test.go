package services

import (
	"strconv"
	"time"

	"github.com/bosesayankolkata/dairyexpress/internal/models"

	"gorm.io/gorm"
)

type fakeAdminRepo struct {
	admins map[string]*models.Admin
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: make(map[string]*models.Admin)}
}

func (f *fakeAdminRepo) Create(admin *models.Admin) error {
	if admin.ID == "" {
		admin.ID = "admin-" + admin.Username
	}
	f.admins[admin.Username] = admin
	return nil
}

func (f *fakeAdminRepo) GetByUsername(username string) (*models.Admin, error) {
	admin, ok := f.admins[username]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return admin, nil
}

func (f *fakeAdminRepo) DeleteAll() error {
	f.admins = make(map[string]*models.Admin)
	return nil
}

type fakePersonRepo struct {
	persons map[string]*models.DeliveryPerson
	nextID  int
}

func newFakePersonRepo() *fakePersonRepo {
	return &fakePersonRepo{persons: make(map[string]*models.DeliveryPerson)}
}

func (f *fakePersonRepo) Create(person *models.DeliveryPerson) error {
	if person.ID == "" {
		f.nextID++
		person.ID = "person-" + strconv.Itoa(f.nextID)
	}
	f.persons[person.ID] = person
	return nil
}

func (f *fakePersonRepo) GetByID(id string) (*models.DeliveryPerson, error) {
	person, ok := f.persons[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	person.Normalize()
	return person, nil
}

func (f *fakePersonRepo) GetByPhone(phone string) (*models.DeliveryPerson, error) {
	for _, person := range f.persons {
		if person.Phone == phone {
			person.Normalize()
			return person, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePersonRepo) GetAll() ([]models.DeliveryPerson, error) {
	var persons []models.DeliveryPerson
	for _, person := range f.persons {
		person.Normalize()
		persons = append(persons, *person)
	}
	return persons, nil
}

func (f *fakePersonRepo) UpdatePasswordHash(id, passwordHash string) (int64, error) {
	person, ok := f.persons[id]
	if !ok {
		return 0, nil
	}
	person.PasswordHash = passwordHash
	return 1, nil
}

type fakeDeliveryRepo struct {
	deliveries map[string]*models.Delivery
}

func newFakeDeliveryRepo() *fakeDeliveryRepo {
	return &fakeDeliveryRepo{deliveries: make(map[string]*models.Delivery)}
}

func (f *fakeDeliveryRepo) Create(delivery *models.Delivery) error {
	if delivery.ID == "" {
		delivery.ID = "delivery-" + delivery.CustomerName
	}
	f.deliveries[delivery.ID] = delivery
	return nil
}

func (f *fakeDeliveryRepo) GetByID(id string) (*models.Delivery, error) {
	delivery, ok := f.deliveries[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return delivery, nil
}

func (f *fakeDeliveryRepo) GetByIDForPerson(id, deliveryPersonID string) (*models.Delivery, error) {
	delivery, ok := f.deliveries[id]
	if !ok || delivery.DeliveryPersonID != deliveryPersonID {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *delivery
	return &copied, nil
}

func (f *fakeDeliveryRepo) GetAll() ([]models.Delivery, error) {
	var deliveries []models.Delivery
	for _, d := range f.deliveries {
		deliveries = append(deliveries, *d)
	}
	return deliveries, nil
}

func (f *fakeDeliveryRepo) GetByDeliveryPerson(deliveryPersonID string) ([]models.Delivery, error) {
	var deliveries []models.Delivery
	for _, d := range f.deliveries {
		if d.DeliveryPersonID == deliveryPersonID {
			deliveries = append(deliveries, *d)
		}
	}
	return deliveries, nil
}

func (f *fakeDeliveryRepo) Update(delivery *models.Delivery) error {
	f.deliveries[delivery.ID] = delivery
	return nil
}

func (f *fakeDeliveryRepo) Reassign(id, newPersonID string) (int64, error) {
	delivery, ok := f.deliveries[id]
	if !ok {
		return 0, nil
	}
	delivery.DeliveryPersonID = newPersonID
	return 1, nil
}

func (f *fakeDeliveryRepo) Search(startDate, endDate *time.Time, deliveryPersonID, pincode string) ([]models.Delivery, error) {
	var deliveries []models.Delivery
	for _, d := range f.deliveries {
		if deliveryPersonID != "" && d.DeliveryPersonID != deliveryPersonID {
			continue
		}
		if pincode != "" && d.CustomerPincode != pincode {
			continue
		}
		deliveries = append(deliveries, *d)
	}
	return deliveries, nil
}

type fakeOrderRepo struct {
	orders []*models.Order
}

func (f *fakeOrderRepo) Create(order *models.Order) error {
	if order.ID == "" {
		order.ID = order.OrderNumber
	}
	f.orders = append(f.orders, order)
	return nil
}

func (f *fakeOrderRepo) GetByID(id string) (*models.Order, error) {
	for _, o := range f.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeOrderRepo) GetByCustomerID(customerID string) ([]models.Order, error) {
	var orders []models.Order
	for _, o := range f.orders {
		if o.CustomerID == customerID {
			orders = append(orders, *o)
		}
	}
	return orders, nil
}

func (f *fakeOrderRepo) GetAll() ([]models.Order, error) {
	var orders []models.Order
	for _, o := range f.orders {
		orders = append(orders, *o)
	}
	return orders, nil
}

func (f *fakeOrderRepo) Search(startDate, endDate *time.Time, deliveryPersonID string) ([]models.Order, error) {
	return f.GetAll()
}

type fakeCustomerRepo struct {
	customers map[string]*models.Customer
	nextID    int
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[string]*models.Customer)}
}

func (f *fakeCustomerRepo) Create(customer *models.Customer) error {
	if customer.ID == "" {
		f.nextID++
		customer.ID = "customer-" + strconv.Itoa(f.nextID)
	}
	f.customers[customer.ID] = customer
	return nil
}

func (f *fakeCustomerRepo) GetByID(id string) (*models.Customer, error) {
	customer, ok := f.customers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return customer, nil
}

func (f *fakeCustomerRepo) GetByWhatsAppNumber(number string) (*models.Customer, error) {
	for _, c := range f.customers {
		if c.WhatsAppNumber == number {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCustomerRepo) GetAll() ([]models.Customer, error) {
	var customers []models.Customer
	for _, c := range f.customers {
		customers = append(customers, *c)
	}
	return customers, nil
}

func (f *fakeCustomerRepo) Update(customer *models.Customer) error {
	f.customers[customer.ID] = customer
	return nil
}

func (f *fakeCustomerRepo) IncrementOrderCount(id string) error {
	customer, ok := f.customers[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	customer.TotalOrders++
	return nil
}
