package services

import (
	"context"
	"sync"

	"github.com/mirkashi/Grazieoutfits/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ---- mock order repository ----

type mockOrderRepo struct {
	created     *models.Order
	createErr   error
	orders      []models.Order
	findErr     error
	lastFilter  bson.M
	byID        *models.Order
	byIDErr     error
	updated     *models.Order
	updateErr   error
	lastUpdates bson.M
}

func (m *mockOrderRepo) Create(_ context.Context, order *models.Order) error {
	if m.createErr != nil {
		return m.createErr
	}
	order.ID = primitive.NewObjectID()
	m.created = order
	return nil
}

func (m *mockOrderRepo) Find(_ context.Context, filter bson.M) ([]models.Order, error) {
	m.lastFilter = filter
	return m.orders, m.findErr
}

func (m *mockOrderRepo) FindByID(_ context.Context, _ primitive.ObjectID) (*models.Order, error) {
	if m.byIDErr != nil {
		return nil, m.byIDErr
	}
	if m.byID == nil {
		return nil, mongo.ErrNoDocuments
	}
	return m.byID, nil
}

func (m *mockOrderRepo) UpdateStatus(_ context.Context, _ primitive.ObjectID, updates bson.M) (*models.Order, error) {
	m.lastUpdates = updates
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	if m.updated == nil {
		return nil, mongo.ErrNoDocuments
	}
	return m.updated, nil
}

// ---- mock product repository ----

type mockProductRepo struct {
	products   []models.Product
	findErr    error
	lastFilter bson.M
	byID       *models.Product
	byIDErr    error
	created    *models.Product
	createErr  error
	updated    *models.Product
	updateErr  error
	deleted    int64
	deleteErr  error
}

func (m *mockProductRepo) Find(_ context.Context, filter bson.M) ([]models.Product, error) {
	m.lastFilter = filter
	return m.products, m.findErr
}

func (m *mockProductRepo) FindByID(_ context.Context, _ primitive.ObjectID) (*models.Product, error) {
	if m.byIDErr != nil {
		return nil, m.byIDErr
	}
	if m.byID == nil {
		return nil, mongo.ErrNoDocuments
	}
	return m.byID, nil
}

func (m *mockProductRepo) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.Product, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	matched := []models.Product{}
	for _, p := range m.products {
		for _, id := range ids {
			if p.ID == id {
				matched = append(matched, p)
			}
		}
	}
	return matched, nil
}

func (m *mockProductRepo) Create(_ context.Context, product *models.Product) error {
	if m.createErr != nil {
		return m.createErr
	}
	product.ID = primitive.NewObjectID()
	m.created = product
	return nil
}

func (m *mockProductRepo) Update(_ context.Context, _ primitive.ObjectID, _ bson.M) (*models.Product, error) {
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	if m.updated == nil {
		return nil, mongo.ErrNoDocuments
	}
	return m.updated, nil
}

func (m *mockProductRepo) Delete(_ context.Context, _ primitive.ObjectID) (int64, error) {
	return m.deleted, m.deleteErr
}

// ---- mock settings repository ----

type mockSettingsRepo struct {
	settings          *models.Settings
	getErr            error
	getOrCreateCalled int
	lastUpdates       bson.M
	updateErr         error
}

func (m *mockSettingsRepo) Get(_ context.Context) (*models.Settings, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if m.settings == nil {
		return nil, mongo.ErrNoDocuments
	}
	return m.settings, nil
}

func (m *mockSettingsRepo) GetOrCreate(_ context.Context) (*models.Settings, error) {
	m.getOrCreateCalled++
	if m.settings != nil {
		return m.settings, nil
	}
	seeded := models.DefaultSettings()
	m.settings = seeded
	return seeded, nil
}

func (m *mockSettingsRepo) Update(_ context.Context, updates bson.M) (*models.Settings, error) {
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	m.lastUpdates = updates
	if m.settings == nil {
		m.settings = models.DefaultSettings()
	}
	if v, ok := updates["email_config"]; ok {
		m.settings.EmailConfig = v.(models.EmailConfig)
	}
	if v, ok := updates["shipping_rates"]; ok {
		m.settings.ShippingRates = v.([]models.ShippingRate)
	}
	if v, ok := updates["payment_methods"]; ok {
		m.settings.PaymentMethods = v.(models.PaymentMethods)
	}
	if v, ok := updates["business_info"]; ok {
		m.settings.BusinessInfo = v.(models.BusinessInfo)
	}
	return m.settings, nil
}

// ---- mock admin repository ----

type mockAdminRepo struct {
	mu       sync.Mutex
	admins   map[string]*models.Admin // keyed by username
	countErr error
}

func newMockAdminRepo(admins ...*models.Admin) *mockAdminRepo {
	repo := &mockAdminRepo{admins: map[string]*models.Admin{}}
	for _, a := range admins {
		if a.ID.IsZero() {
			a.ID = primitive.NewObjectID()
		}
		repo.admins[a.Username] = a
	}
	return repo
}

func (m *mockAdminRepo) FindByUsername(_ context.Context, username string) (*models.Admin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if admin, ok := m.admins[username]; ok {
		return admin, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (m *mockAdminRepo) FindByUsernameOrEmail(_ context.Context, username, email string) (*models.Admin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, admin := range m.admins {
		if admin.Username == username || admin.Email == email {
			return admin, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (m *mockAdminRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Admin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, admin := range m.admins {
		if admin.ID == id {
			return admin, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (m *mockAdminRepo) Create(_ context.Context, admin *models.Admin) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	admin.ID = primitive.NewObjectID()
	m.admins[admin.Username] = admin
	return nil
}

func (m *mockAdminRepo) UpdatePassword(_ context.Context, id primitive.ObjectID, passwordHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, admin := range m.admins {
		if admin.ID == id {
			admin.PasswordHash = passwordHash
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (m *mockAdminRepo) Count(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.admins)), m.countErr
}

// ---- mock mailer ----

type sentMail struct {
	order *models.Order
	cfg   models.EmailConfig
}

type mockMailer struct {
	sendErr error
	sent    chan sentMail
}

func newMockMailer() *mockMailer {
	return &mockMailer{sent: make(chan sentMail, 1)}
}

func (m *mockMailer) SendOrderConfirmation(_ context.Context, order *models.Order, cfg models.EmailConfig) error {
	m.sent <- sentMail{order: order, cfg: cfg}
	return m.sendErr
}
