package conversation

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/bosesayankolkata/dairyexpress/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memoryStore struct {
	mu     sync.Mutex
	states map[string]State
}

func newMemoryStore() *memoryStore {
	return &memoryStore{states: make(map[string]State)}
}

func (m *memoryStore) Get(ctx context.Context, phoneNumber string) (*State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	state, ok := m.states[phoneNumber]
	if !ok {
		return nil, nil
	}
	copied := state
	return &copied, nil
}

func (m *memoryStore) Save(ctx context.Context, state *State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.states[state.PhoneNumber] = *state
	return nil
}

type fakeCatalog struct {
	categories      []models.Category
	productTypes    map[string][]models.ProductType
	characteristics map[string][]models.Characteristic
	sizes           map[string][]models.Size
	pincodes        map[string]*models.PinCode
}

func (f *fakeCatalog) ActiveCategories(ctx context.Context) ([]models.Category, error) {
	return f.categories, nil
}

func (f *fakeCatalog) ActiveProductTypes(ctx context.Context, categoryID string) ([]models.ProductType, error) {
	return f.productTypes[categoryID], nil
}

func (f *fakeCatalog) ActiveCharacteristics(ctx context.Context, productTypeID string) ([]models.Characteristic, error) {
	return f.characteristics[productTypeID], nil
}

func (f *fakeCatalog) ActiveSizes(ctx context.Context, characteristicID string) ([]models.Size, error) {
	return f.sizes[characteristicID], nil
}

func (f *fakeCatalog) ServiceablePincode(ctx context.Context, pincode string) (*models.PinCode, error) {
	pc, ok := f.pincodes[pincode]
	if !ok {
		return nil, ErrNotFound
	}
	return pc, nil
}

type fakeOrders struct {
	placed     []Selections
	placedFor  []string
	failWith   error
	nextNumber string
}

func (f *fakeOrders) PlaceOrder(ctx context.Context, phoneNumber string, sel Selections) (*models.Order, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	f.placed = append(f.placed, sel)
	f.placedFor = append(f.placedFor, phoneNumber)
	number := f.nextNumber
	if number == "" {
		number = "ORD20260101000000-abc123"
	}
	return &models.Order{OrderNumber: number, TotalAmount: sel.TotalAmount}, nil
}

func testCatalog() *fakeCatalog {
	return &fakeCatalog{
		categories: []models.Category{
			{ID: "cat-1", Name: "Milk", Description: "Fresh milk delivered daily"},
			{ID: "cat-2", Name: "Curd"},
		},
		productTypes: map[string][]models.ProductType{
			"cat-1": {{ID: "pt-1", Name: "Cow Milk", CategoryID: "cat-1"}},
		},
		characteristics: map[string][]models.Characteristic{
			"pt-1": {{ID: "ch-1", Name: "Full Cream", ProductTypeID: "pt-1"}},
		},
		sizes: map[string][]models.Size{
			"ch-1": {{ID: "sz-1", Name: "Small", Value: "500ml", CharacteristicID: "ch-1", Price: 25}},
		},
		pincodes: map[string]*models.PinCode{
			"560001": {
				ID:            "pin-1",
				Pincode:       "560001",
				AreaName:      "Koramangala",
				IsServiceable: true,
			},
		},
	}
}

func newTestEngine() (*Engine, *memoryStore, *fakeOrders) {
	store := newMemoryStore()
	orders := &fakeOrders{}
	engine := NewEngine(store, testCatalog(), orders, "+91 90075 09919", zap.NewNop())
	return engine, store, orders
}

func TestFirstMessageAsksCustomerType(t *testing.T) {
	engine, store, _ := newTestEngine()
	ctx := context.Background()

	reply, err := engine.HandleMessage(ctx, "+91 98000 00001", "Hi")
	require.NoError(t, err)
	assert.Equal(t, welcomePrompt, reply)

	state, err := store.Get(ctx, "919800000001")
	require.NoError(t, err)
	require.NotNil(t, state)
	assert.Equal(t, StepCustomerType, state.Step)
	assert.True(t, state.Selections.IsEmpty())
}

func TestGreetingRestartsMidFlow(t *testing.T) {
	engine, store, _ := newTestEngine()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &State{
		PhoneNumber: "919800000001",
		Step:        StepShowSizes,
		Selections:  Selections{CategoryID: "cat-1", ProductTypeID: "pt-1", CharacteristicID: "ch-1"},
	}))

	reply, err := engine.HandleMessage(ctx, "919800000001", "hello")
	require.NoError(t, err)
	assert.Equal(t, welcomePrompt, reply)

	state, _ := store.Get(ctx, "919800000001")
	assert.Equal(t, StepCustomerType, state.Step)
}

func TestCustomerTypeSelection(t *testing.T) {
	ctx := context.Background()

	t.Run("new customer", func(t *testing.T) {
		engine, store, _ := newTestEngine()
		require.NoError(t, store.Save(ctx, &State{PhoneNumber: "1", Step: StepCustomerType}))

		reply, err := engine.HandleMessage(ctx, "1", "1")
		require.NoError(t, err)
		assert.Equal(t, locationPrompt, reply)

		state, _ := store.Get(ctx, "1")
		assert.Equal(t, StepCaptureLocation, state.Step)
	})

	t.Run("existing customer", func(t *testing.T) {
		engine, store, _ := newTestEngine()
		require.NoError(t, store.Save(ctx, &State{PhoneNumber: "1", Step: StepCustomerType}))

		reply, err := engine.HandleMessage(ctx, "1", "existing")
		require.NoError(t, err)
		assert.Equal(t, existingMenuPrompt, reply)

		state, _ := store.Get(ctx, "1")
		assert.Equal(t, StepExistingMenu, state.Step)
	})

	t.Run("unrecognized input retries", func(t *testing.T) {
		engine, store, _ := newTestEngine()
		require.NoError(t, store.Save(ctx, &State{PhoneNumber: "1", Step: StepCustomerType}))

		reply, err := engine.HandleMessage(ctx, "1", "maybe")
		require.NoError(t, err)
		assert.Equal(t, customerTypeRetryPrompt, reply)

		state, _ := store.Get(ctx, "1")
		assert.Equal(t, StepCustomerType, state.Step)
	})
}

func TestPincodeGating(t *testing.T) {
	ctx := context.Background()

	t.Run("malformed pincode", func(t *testing.T) {
		engine, store, _ := newTestEngine()
		require.NoError(t, store.Save(ctx, &State{PhoneNumber: "1", Step: StepCaptureLocation}))

		reply, err := engine.HandleMessage(ctx, "1", "56000")
		require.NoError(t, err)
		assert.Equal(t, invalidLocationPrompt, reply)

		state, _ := store.Get(ctx, "1")
		assert.Equal(t, StepCaptureLocation, state.Step)
	})

	t.Run("not serviceable", func(t *testing.T) {
		engine, store, _ := newTestEngine()
		require.NoError(t, store.Save(ctx, &State{PhoneNumber: "1", Step: StepCaptureLocation}))

		reply, err := engine.HandleMessage(ctx, "1", "111111")
		require.NoError(t, err)
		assert.Equal(t, notServiceablePrompt("111111"), reply)

		state, _ := store.Get(ctx, "1")
		assert.Equal(t, StepCaptureLocation, state.Step)
		assert.Empty(t, state.Selections.Pincode)
	})

	t.Run("serviceable advances to categories", func(t *testing.T) {
		engine, store, _ := newTestEngine()
		require.NoError(t, store.Save(ctx, &State{PhoneNumber: "1", Step: StepCaptureLocation}))

		reply, err := engine.HandleMessage(ctx, "1", "560001")
		require.NoError(t, err)
		assert.Contains(t, reply, "We deliver to 560001")
		assert.Contains(t, reply, "Koramangala")
		assert.Contains(t, reply, "Select Product Category")

		state, _ := store.Get(ctx, "1")
		assert.Equal(t, StepShowCategories, state.Step)
		assert.Equal(t, "560001", state.Selections.Pincode)
		assert.Equal(t, "Koramangala", state.Selections.Area)
	})
}

func TestInvalidSelectionKeepsStep(t *testing.T) {
	ctx := context.Background()

	t.Run("out of range", func(t *testing.T) {
		engine, store, _ := newTestEngine()
		require.NoError(t, store.Save(ctx, &State{PhoneNumber: "1", Step: StepShowCategories}))

		reply, err := engine.HandleMessage(ctx, "1", "9")
		require.NoError(t, err)
		assert.Equal(t, invalidOptionPrompt(2), reply)

		state, _ := store.Get(ctx, "1")
		assert.Equal(t, StepShowCategories, state.Step)
		assert.Empty(t, state.Selections.CategoryID)
	})

	t.Run("not a number", func(t *testing.T) {
		engine, store, _ := newTestEngine()
		require.NoError(t, store.Save(ctx, &State{PhoneNumber: "1", Step: StepShowCategories}))

		reply, err := engine.HandleMessage(ctx, "1", "milk please")
		require.NoError(t, err)
		assert.Equal(t, notNumberPrompt, reply)

		state, _ := store.Get(ctx, "1")
		assert.Equal(t, StepShowCategories, state.Step)
	})
}

func TestQuantityFrequencyTotals(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		choice   string
		quantity int
		freqType string
		days     int
		total    float64
	}{
		{"1", 1, "once", 1, 25},
		{"2", 1, "daily", 30, 750},
		{"3", 2, "daily", 30, 1500},
		{"4", 1, "alternate_day", 30, 375},
	}

	for _, tc := range cases {
		t.Run("option "+tc.choice, func(t *testing.T) {
			engine, store, _ := newTestEngine()
			require.NoError(t, store.Save(ctx, &State{
				PhoneNumber: "1",
				Step:        StepSelectQuantityFrequency,
				Selections:  Selections{SizeID: "sz-1", SizePrice: 25},
			}))

			reply, err := engine.HandleMessage(ctx, "1", tc.choice)
			require.NoError(t, err)
			assert.Equal(t, deliverySlotsPrompt, reply)

			state, _ := store.Get(ctx, "1")
			assert.Equal(t, StepSelectDeliverySlot, state.Step)
			assert.Equal(t, tc.quantity, state.Selections.Quantity)
			require.NotNil(t, state.Selections.Frequency)
			assert.Equal(t, tc.freqType, state.Selections.Frequency.Type)
			assert.Equal(t, tc.days, state.Selections.Frequency.Days)
			assert.Equal(t, tc.total, state.Selections.TotalAmount)
		})
	}

	t.Run("custom option does not advance", func(t *testing.T) {
		engine, store, _ := newTestEngine()
		require.NoError(t, store.Save(ctx, &State{
			PhoneNumber: "1",
			Step:        StepSelectQuantityFrequency,
			Selections:  Selections{SizeID: "sz-1", SizePrice: 25},
		}))

		reply, err := engine.HandleMessage(ctx, "1", "5")
		require.NoError(t, err)
		assert.Equal(t, customQuantityPrompt, reply)

		state, _ := store.Get(ctx, "1")
		assert.Equal(t, StepSelectQuantityFrequency, state.Step)
	})
}

func TestAddressAndNameValidation(t *testing.T) {
	ctx := context.Background()

	t.Run("short address retries", func(t *testing.T) {
		engine, store, _ := newTestEngine()
		require.NoError(t, store.Save(ctx, &State{PhoneNumber: "1", Step: StepCollectAddress}))

		reply, err := engine.HandleMessage(ctx, "1", "A-101")
		require.NoError(t, err)
		assert.Equal(t, addressRetryPrompt, reply)

		state, _ := store.Get(ctx, "1")
		assert.Equal(t, StepCollectAddress, state.Step)
	})

	t.Run("short name retries", func(t *testing.T) {
		engine, store, _ := newTestEngine()
		require.NoError(t, store.Save(ctx, &State{PhoneNumber: "1", Step: StepCollectName}))

		reply, err := engine.HandleMessage(ctx, "1", "R")
		require.NoError(t, err)
		assert.Equal(t, nameRetryPrompt, reply)
	})

	t.Run("name moves to confirmation", func(t *testing.T) {
		engine, store, _ := newTestEngine()
		require.NoError(t, store.Save(ctx, &State{PhoneNumber: "1", Step: StepCollectName}))

		reply, err := engine.HandleMessage(ctx, "1", "Ravi Kumar")
		require.NoError(t, err)
		assert.Contains(t, reply, "ORDER CONFIRMATION")
		assert.Contains(t, reply, "Ravi Kumar")

		state, _ := store.Get(ctx, "1")
		assert.Equal(t, StepConfirmOrder, state.Step)
		assert.Equal(t, "Ravi Kumar", state.DisplayName)
	})
}

func TestConfirmPlacesOrderAndResets(t *testing.T) {
	engine, store, orders := newTestEngine()
	ctx := context.Background()

	sel := Selections{
		CategoryID: "cat-1", CategoryName: "Milk",
		ProductTypeID: "pt-1", ProductTypeName: "Cow Milk",
		CharacteristicID: "ch-1", CharacteristicName: "Full Cream",
		SizeID: "sz-1", SizeName: "Small", SizeValue: "500ml", SizePrice: 25,
		Quantity:     1,
		Frequency:    &Frequency{Type: "daily", Name: "Daily", Days: 30},
		TimeSlot:     "6:00 AM - 8:00 AM",
		Pincode:      "560001",
		Address:      "A-101, Green Valley Apartments, Koramangala",
		CustomerName: "Ravi Kumar",
		TotalAmount:  750,
	}
	require.NoError(t, store.Save(ctx, &State{PhoneNumber: "919800000001", Step: StepConfirmOrder, Selections: sel}))

	reply, err := engine.HandleMessage(ctx, "919800000001", "CONFIRM")
	require.NoError(t, err)
	assert.Contains(t, reply, "ORDER CONFIRMED")
	assert.Contains(t, reply, "₹750.00")
	assert.Contains(t, reply, "+91 90075 09919")

	require.Len(t, orders.placed, 1)
	assert.Equal(t, "919800000001", orders.placedFor[0])
	assert.Equal(t, sel, orders.placed[0])

	state, _ := store.Get(ctx, "919800000001")
	assert.Equal(t, StepWelcome, state.Step)
	assert.True(t, state.Selections.IsEmpty())
}

func TestCancelResets(t *testing.T) {
	engine, store, orders := newTestEngine()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &State{
		PhoneNumber: "1",
		Step:        StepConfirmOrder,
		Selections:  Selections{SizeID: "sz-1", TotalAmount: 750},
	}))

	reply, err := engine.HandleMessage(ctx, "1", "cancel")
	require.NoError(t, err)
	assert.Equal(t, cancelledPrompt, reply)
	assert.Empty(t, orders.placed)

	state, _ := store.Get(ctx, "1")
	assert.Equal(t, StepWelcome, state.Step)
	assert.True(t, state.Selections.IsEmpty())
}

func TestConfirmFailureKeepsState(t *testing.T) {
	engine, store, orders := newTestEngine()
	orders.failWith = errors.New("database down")
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &State{
		PhoneNumber: "1",
		Step:        StepConfirmOrder,
		Selections:  Selections{SizeID: "sz-1", TotalAmount: 750},
	}))

	_, err := engine.HandleMessage(ctx, "1", "confirm")
	require.Error(t, err)

	// The failed transition must not be persisted.
	state, _ := store.Get(ctx, "1")
	assert.Equal(t, StepConfirmOrder, state.Step)
	assert.Equal(t, float64(750), state.Selections.TotalAmount)
}

func TestBackNavigation(t *testing.T) {
	ctx := context.Background()

	t.Run("name back to address", func(t *testing.T) {
		engine, store, _ := newTestEngine()
		require.NoError(t, store.Save(ctx, &State{
			PhoneNumber: "1",
			Step:        StepCollectName,
			Selections:  Selections{TimeSlot: "6:00 AM - 8:00 AM"},
		}))

		reply, err := engine.HandleMessage(ctx, "1", "Back")
		require.NoError(t, err)
		assert.Equal(t, addressPrompt("6:00 AM - 8:00 AM"), reply)

		state, _ := store.Get(ctx, "1")
		assert.Equal(t, StepCollectAddress, state.Step)
	})

	t.Run("product types back to categories", func(t *testing.T) {
		engine, store, _ := newTestEngine()
		require.NoError(t, store.Save(ctx, &State{
			PhoneNumber: "1",
			Step:        StepShowProductTypes,
			Selections:  Selections{CategoryID: "cat-1"},
		}))

		reply, err := engine.HandleMessage(ctx, "1", "go back")
		require.NoError(t, err)
		assert.Contains(t, reply, "Select Product Category")

		state, _ := store.Get(ctx, "1")
		assert.Equal(t, StepShowCategories, state.Step)
	})

	t.Run("back with missing parent selection resets", func(t *testing.T) {
		engine, store, _ := newTestEngine()
		require.NoError(t, store.Save(ctx, &State{PhoneNumber: "1", Step: StepShowCharacteristics}))

		reply, err := engine.HandleMessage(ctx, "1", "back")
		require.NoError(t, err)
		assert.Equal(t, welcomePrompt, reply)

		state, _ := store.Get(ctx, "1")
		assert.Equal(t, StepWelcome, state.Step)
		assert.True(t, state.Selections.IsEmpty())
	})

	t.Run("back from unknown step lands on welcome", func(t *testing.T) {
		engine, store, _ := newTestEngine()
		require.NoError(t, store.Save(ctx, &State{PhoneNumber: "1", Step: Step("garbage")}))

		reply, err := engine.HandleMessage(ctx, "1", "back")
		require.NoError(t, err)
		assert.Equal(t, welcomePrompt, reply)
	})
}

func TestSelfServiceOverrideLeavesStateAlone(t *testing.T) {
	engine, store, _ := newTestEngine()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &State{
		PhoneNumber: "1",
		Step:        StepShowSizes,
		Selections:  Selections{CharacteristicID: "ch-1"},
	}))

	reply, err := engine.HandleMessage(ctx, "1", "Pause")
	require.NoError(t, err)
	assert.Contains(t, reply, "Subscription Paused")

	state, _ := store.Get(ctx, "1")
	assert.Equal(t, StepShowSizes, state.Step)
	assert.Equal(t, "ch-1", state.Selections.CharacteristicID)
}

func TestExistingMenu(t *testing.T) {
	ctx := context.Background()

	t.Run("new order jumps to location", func(t *testing.T) {
		engine, store, _ := newTestEngine()
		require.NoError(t, store.Save(ctx, &State{PhoneNumber: "1", Step: StepExistingMenu}))

		reply, err := engine.HandleMessage(ctx, "1", "4")
		require.NoError(t, err)
		assert.Equal(t, locationPrompt, reply)

		state, _ := store.Get(ctx, "1")
		assert.Equal(t, StepCaptureLocation, state.Step)
	})

	t.Run("stub options stay on menu", func(t *testing.T) {
		engine, store, _ := newTestEngine()
		require.NoError(t, store.Save(ctx, &State{PhoneNumber: "1", Step: StepExistingMenu}))

		reply, err := engine.HandleMessage(ctx, "1", "1")
		require.NoError(t, err)
		assert.Contains(t, reply, "coming soon")

		state, _ := store.Get(ctx, "1")
		assert.Equal(t, StepExistingMenu, state.Step)
	})

	t.Run("invalid option retries", func(t *testing.T) {
		engine, store, _ := newTestEngine()
		require.NoError(t, store.Save(ctx, &State{PhoneNumber: "1", Step: StepExistingMenu}))

		reply, err := engine.HandleMessage(ctx, "1", "9")
		require.NoError(t, err)
		assert.Equal(t, existingMenuRetryPrompt, reply)
	})
}

func TestUnknownStepReorients(t *testing.T) {
	engine, store, _ := newTestEngine()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &State{PhoneNumber: "1", Step: Step("corrupted")}))

	reply, err := engine.HandleMessage(ctx, "1", "2")
	require.NoError(t, err)
	assert.Equal(t, reorientPrompt, reply)

	state, _ := store.Get(ctx, "1")
	assert.Equal(t, StepWelcome, state.Step)
}

func TestEndToEndOrderFlow(t *testing.T) {
	engine, store, orders := newTestEngine()
	ctx := context.Background()
	phone := "+91-98000-00001"

	steps := []struct {
		message  string
		contains string
	}{
		{"Hi", "Welcome to Fresh Dairy"},
		{"1", "PIN CODE"},
		{"560001", "Select Product Category"},
		{"1", "select a product type"},
		{"1", "select product characteristics"},
		{"1", "select a size"},
		{"2", "Select Delivery Time"},
		{"1", "delivery address"},
		{"A-101, Green Valley Apartments, Koramangala", "your name"},
		{"Ravi Kumar", "ORDER CONFIRMATION"},
		{"confirm", "ORDER CONFIRMED"},
	}

	for _, s := range steps {
		reply, err := engine.HandleMessage(ctx, phone, s.message)
		require.NoError(t, err, "message %q", s.message)
		assert.Contains(t, reply, s.contains, "message %q", s.message)
	}

	require.Len(t, orders.placed, 1)
	sel := orders.placed[0]
	assert.Equal(t, "919800000001", orders.placedFor[0])
	assert.Equal(t, "cat-1", sel.CategoryID)
	assert.Equal(t, "pt-1", sel.ProductTypeID)
	assert.Equal(t, "ch-1", sel.CharacteristicID)
	assert.Equal(t, "sz-1", sel.SizeID)
	assert.Equal(t, 1, sel.Quantity)
	require.NotNil(t, sel.Frequency)
	assert.Equal(t, "daily", sel.Frequency.Type)
	assert.Equal(t, float64(750), sel.TotalAmount)
	assert.Equal(t, "560001", sel.Pincode)
	assert.Equal(t, "Ravi Kumar", sel.CustomerName)

	state, _ := store.Get(ctx, "919800000001")
	assert.Equal(t, StepWelcome, state.Step)
	assert.True(t, state.Selections.IsEmpty())
}

func TestConcurrentMessagesSamePhone(t *testing.T) {
	engine, store, _ := newTestEngine()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := engine.HandleMessage(ctx, "919800000001", "hi")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	state, _ := store.Get(ctx, "919800000001")
	require.NotNil(t, state)
	assert.Equal(t, StepCustomerType, state.Step)
}

func TestStateJSONRoundTrip(t *testing.T) {
	state := &State{
		PhoneNumber: "919800000001",
		DisplayName: "Ravi Kumar",
		Step:        StepConfirmOrder,
		Selections: Selections{
			CategoryID:   "cat-1",
			SizeID:       "sz-1",
			SizePrice:    25,
			Quantity:     2,
			Frequency:    &Frequency{Type: "daily", Name: "Daily", Days: 30},
			TimeSlot:     "6:00 AM - 8:00 AM",
			Pincode:      "560001",
			Address:      "A-101, Green Valley Apartments",
			CustomerName: "Ravi Kumar",
			TotalAmount:  1500,
		},
	}

	data, err := json.Marshal(state)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"selected_category_id"`)
	assert.Contains(t, string(data), `"delivery_frequency"`)

	var decoded State
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, state.Step, decoded.Step)
	assert.Equal(t, state.Selections.Quantity, decoded.Selections.Quantity)
	assert.Equal(t, *state.Selections.Frequency, *decoded.Selections.Frequency)
	assert.Equal(t, state.Selections.TotalAmount, decoded.Selections.TotalAmount)
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "919800000001", NormalizePhone("+91 98000 00001"))
	assert.Equal(t, "919800000001", NormalizePhone("91-9800000001"))
	assert.Equal(t, "919800000001", NormalizePhone("919800000001"))
}

func TestPreviousStep(t *testing.T) {
	assert.Equal(t, StepShowSizes, PreviousStep(StepSelectQuantityFrequency))
	assert.Equal(t, StepCollectName, PreviousStep(StepConfirmOrder))
	assert.Equal(t, StepWelcome, PreviousStep(StepCustomerType))
	assert.Equal(t, StepWelcome, PreviousStep(Step("never-seen")))
}
