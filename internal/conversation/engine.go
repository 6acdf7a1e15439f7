package conversation

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"
)

var (
	greetings = map[string]bool{"hi": true, "hello": true, "hey": true, "start": true}

	backSynonyms = map[string]bool{"back": true, "go back": true, "previous": true}

	selfServiceActions = map[string]bool{
		"pause":               true,
		"skip tomorrow":       true,
		"change qty":          true,
		"cancel subscription": true,
	}
)

var (
	errNotNumber  = errors.New("input is not a number")
	errOutOfRange = errors.New("choice out of range")
)

// Engine is the step-keyed dialogue state machine. Given the persisted state
// for a phone number and an inbound message it computes the next state,
// persists it and returns the reply text. Order records are only written on
// the confirm transition.
type Engine struct {
	states       StateStore
	catalog      Catalog
	orders       Orders
	supportPhone string
	log          *zap.Logger

	locks sync.Map // phone number -> *sync.Mutex
}

func NewEngine(states StateStore, catalog Catalog, orders Orders, supportPhone string, log *zap.Logger) *Engine {
	return &Engine{
		states:       states,
		catalog:      catalog,
		orders:       orders,
		supportPhone: supportPhone,
		log:          log,
	}
}

// NormalizePhone strips formatting so the same number always maps to the same
// conversation record.
func NormalizePhone(phone string) string {
	r := strings.NewReplacer("+", "", "-", "", " ", "")
	return r.Replace(phone)
}

// HandleMessage runs one transition for the given phone number. Transitions
// for the same number are serialized; two near-simultaneous messages cannot
// interleave state reads and writes.
func (e *Engine) HandleMessage(ctx context.Context, phoneNumber, text string) (string, error) {
	phoneNumber = NormalizePhone(phoneNumber)

	lock := e.phoneLock(phoneNumber)
	lock.Lock()
	defer lock.Unlock()

	state, err := e.states.Get(ctx, phoneNumber)
	if err != nil {
		return "", fmt.Errorf("load conversation state: %w", err)
	}
	if state == nil {
		state = NewState(phoneNumber)
	}

	reply, err := e.transition(ctx, state, text)
	if err != nil {
		return "", err
	}

	if err := e.states.Save(ctx, state); err != nil {
		return "", fmt.Errorf("save conversation state: %w", err)
	}
	return reply, nil
}

func (e *Engine) phoneLock(phoneNumber string) *sync.Mutex {
	v, _ := e.locks.LoadOrStore(phoneNumber, &sync.Mutex{})
	return v.(*sync.Mutex)
}

func (e *Engine) transition(ctx context.Context, state *State, text string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(text))

	// Global overrides, evaluated before step dispatch.
	if backSynonyms[normalized] {
		return e.goBack(ctx, state)
	}
	if selfServiceActions[normalized] {
		// Acknowledged without mutating step or selections.
		return selfServicePrompt(normalized), nil
	}
	if state.Step == StepWelcome || greetings[normalized] {
		state.Step = StepCustomerType
		return welcomePrompt, nil
	}

	switch state.Step {
	case StepCustomerType:
		return e.handleCustomerType(state, normalized), nil
	case StepCaptureLocation:
		return e.handleCaptureLocation(ctx, state, normalized)
	case StepShowCategories:
		return e.handleCategorySelection(ctx, state, normalized)
	case StepShowProductTypes:
		return e.handleProductTypeSelection(ctx, state, normalized)
	case StepShowCharacteristics:
		return e.handleCharacteristicSelection(ctx, state, normalized)
	case StepShowSizes:
		return e.handleSizeSelection(ctx, state, normalized)
	case StepSelectQuantityFrequency:
		return e.handleQuantityFrequency(state, normalized), nil
	case StepSelectDeliverySlot:
		return e.handleDeliverySlot(state, normalized), nil
	case StepCollectAddress:
		return e.handleAddress(state, text), nil
	case StepCollectName:
		return e.handleName(state, text), nil
	case StepConfirmOrder:
		return e.handleConfirmation(ctx, state, normalized)
	case StepExistingMenu, StepSelfServiceMenu:
		return e.handleExistingMenu(state, normalized), nil
	default:
		// Corrupted or unknown step value.
		e.log.Warn("unknown conversation step, resetting",
			zap.String("phone", state.PhoneNumber),
			zap.String("step", string(state.Step)))
		state.Reset()
		return reorientPrompt, nil
	}
}

func (e *Engine) goBack(ctx context.Context, state *State) (string, error) {
	state.Step = PreviousStep(state.Step)
	return e.promptFor(ctx, state)
}

// promptFor renders the entry prompt for the state's current step. Used by
// back navigation so the customer lands on the step's normal question.
func (e *Engine) promptFor(ctx context.Context, state *State) (string, error) {
	switch state.Step {
	case StepWelcome, StepCustomerType:
		return welcomePrompt, nil
	case StepCaptureLocation:
		return locationPrompt, nil
	case StepShowCategories:
		categories, err := e.catalog.ActiveCategories(ctx)
		if err != nil {
			return "", fmt.Errorf("list categories: %w", err)
		}
		return categoriesPrompt(categories), nil
	case StepShowProductTypes:
		if state.Selections.CategoryID == "" {
			state.Reset()
			return welcomePrompt, nil
		}
		productTypes, err := e.catalog.ActiveProductTypes(ctx, state.Selections.CategoryID)
		if err != nil {
			return "", fmt.Errorf("list product types: %w", err)
		}
		return productTypesPrompt(productTypes), nil
	case StepShowCharacteristics:
		if state.Selections.ProductTypeID == "" {
			state.Reset()
			return welcomePrompt, nil
		}
		characteristics, err := e.catalog.ActiveCharacteristics(ctx, state.Selections.ProductTypeID)
		if err != nil {
			return "", fmt.Errorf("list characteristics: %w", err)
		}
		return characteristicsPrompt(characteristics), nil
	case StepShowSizes:
		if state.Selections.CharacteristicID == "" {
			state.Reset()
			return welcomePrompt, nil
		}
		sizes, err := e.catalog.ActiveSizes(ctx, state.Selections.CharacteristicID)
		if err != nil {
			return "", fmt.Errorf("list sizes: %w", err)
		}
		return sizesPrompt(sizes), nil
	case StepSelectQuantityFrequency:
		if state.Selections.SizeID == "" {
			state.Reset()
			return welcomePrompt, nil
		}
		return quantityFrequencyPrompt(state.Selections), nil
	case StepSelectDeliverySlot:
		return deliverySlotsPrompt, nil
	case StepCollectAddress:
		return addressPrompt(state.Selections.TimeSlot), nil
	case StepCollectName:
		return namePrompt, nil
	case StepConfirmOrder:
		return confirmationPrompt(state.Selections), nil
	case StepExistingMenu, StepSelfServiceMenu:
		return existingMenuPrompt, nil
	}
	state.Reset()
	return welcomePrompt, nil
}

func (e *Engine) handleCustomerType(state *State, normalized string) string {
	switch normalized {
	case "1", "new", "new customer":
		state.Step = StepCaptureLocation
		return locationPrompt
	case "2", "existing", "existing customer":
		state.Step = StepExistingMenu
		return existingMenuPrompt
	default:
		return customerTypeRetryPrompt
	}
}

func (e *Engine) handleCaptureLocation(ctx context.Context, state *State, normalized string) (string, error) {
	if !isPincode(normalized) {
		return invalidLocationPrompt, nil
	}

	pc, err := e.catalog.ServiceablePincode(ctx, normalized)
	if errors.Is(err, ErrNotFound) {
		return notServiceablePrompt(normalized), nil
	}
	if err != nil {
		return "", fmt.Errorf("look up pincode: %w", err)
	}

	state.Selections.Pincode = pc.Pincode
	state.Selections.Area = pc.AreaName
	state.Step = StepShowCategories

	categories, err := e.catalog.ActiveCategories(ctx)
	if err != nil {
		return "", fmt.Errorf("list categories: %w", err)
	}
	return serviceablePrompt(pc) + "\n\n" + categoriesPrompt(categories), nil
}

func (e *Engine) handleCategorySelection(ctx context.Context, state *State, normalized string) (string, error) {
	categories, err := e.catalog.ActiveCategories(ctx)
	if err != nil {
		return "", fmt.Errorf("list categories: %w", err)
	}

	idx, err := parseChoice(normalized, len(categories))
	if err != nil {
		return choiceErrorReply(err, len(categories)), nil
	}

	selected := categories[idx]
	state.Selections.CategoryID = selected.ID
	state.Selections.CategoryName = selected.Name
	state.Step = StepShowProductTypes

	productTypes, err := e.catalog.ActiveProductTypes(ctx, selected.ID)
	if err != nil {
		return "", fmt.Errorf("list product types: %w", err)
	}
	return productTypesPrompt(productTypes), nil
}

func (e *Engine) handleProductTypeSelection(ctx context.Context, state *State, normalized string) (string, error) {
	if state.Selections.CategoryID == "" {
		state.Reset()
		return reorientPrompt, nil
	}

	productTypes, err := e.catalog.ActiveProductTypes(ctx, state.Selections.CategoryID)
	if err != nil {
		return "", fmt.Errorf("list product types: %w", err)
	}

	idx, err := parseChoice(normalized, len(productTypes))
	if err != nil {
		return choiceErrorReply(err, len(productTypes)), nil
	}

	selected := productTypes[idx]
	state.Selections.ProductTypeID = selected.ID
	state.Selections.ProductTypeName = selected.Name
	state.Step = StepShowCharacteristics

	characteristics, err := e.catalog.ActiveCharacteristics(ctx, selected.ID)
	if err != nil {
		return "", fmt.Errorf("list characteristics: %w", err)
	}
	return characteristicsPrompt(characteristics), nil
}

func (e *Engine) handleCharacteristicSelection(ctx context.Context, state *State, normalized string) (string, error) {
	if state.Selections.ProductTypeID == "" {
		state.Reset()
		return reorientPrompt, nil
	}

	characteristics, err := e.catalog.ActiveCharacteristics(ctx, state.Selections.ProductTypeID)
	if err != nil {
		return "", fmt.Errorf("list characteristics: %w", err)
	}

	idx, err := parseChoice(normalized, len(characteristics))
	if err != nil {
		return choiceErrorReply(err, len(characteristics)), nil
	}

	selected := characteristics[idx]
	state.Selections.CharacteristicID = selected.ID
	state.Selections.CharacteristicName = selected.Name
	state.Step = StepShowSizes

	sizes, err := e.catalog.ActiveSizes(ctx, selected.ID)
	if err != nil {
		return "", fmt.Errorf("list sizes: %w", err)
	}
	return sizesPrompt(sizes), nil
}

func (e *Engine) handleSizeSelection(ctx context.Context, state *State, normalized string) (string, error) {
	if state.Selections.CharacteristicID == "" {
		state.Reset()
		return reorientPrompt, nil
	}

	sizes, err := e.catalog.ActiveSizes(ctx, state.Selections.CharacteristicID)
	if err != nil {
		return "", fmt.Errorf("list sizes: %w", err)
	}

	idx, err := parseChoice(normalized, len(sizes))
	if err != nil {
		return choiceErrorReply(err, len(sizes)), nil
	}

	selected := sizes[idx]
	state.Selections.SizeID = selected.ID
	state.Selections.SizeName = selected.Name
	state.Selections.SizeValue = selected.Value
	state.Selections.SizePrice = selected.Price
	state.Step = StepSelectQuantityFrequency

	return quantityFrequencyPrompt(state.Selections), nil
}

// Quantity and frequency are selected together from a small bundle menu. The
// multiplier is bundle-specific: 1 for once, 30 for daily, 15 for alternate
// days over a 30-day subscription.
func (e *Engine) handleQuantityFrequency(state *State, normalized string) string {
	if state.Selections.SizeID == "" {
		state.Reset()
		return reorientPrompt
	}

	price := state.Selections.SizePrice

	type bundle struct {
		qty      int
		freq     Frequency
		total    float64
		isCustom bool
	}
	bundles := map[string]bundle{
		"1": {qty: 1, freq: Frequency{Type: "once", Name: "One time", Days: 1}, total: price},
		"2": {qty: 1, freq: Frequency{Type: "daily", Name: "Daily", Days: 30}, total: price * 30},
		"3": {qty: 2, freq: Frequency{Type: "daily", Name: "Daily", Days: 30}, total: price * 2 * 30},
		"4": {qty: 1, freq: Frequency{Type: "alternate_day", Name: "Alternate days", Days: 30}, total: price * 15},
		"5": {isCustom: true},
	}

	b, ok := bundles[normalized]
	if !ok {
		return invalidOptionPrompt(5)
	}
	if b.isCustom {
		// Free-text custom orders are collected but not auto-advanced.
		return customQuantityPrompt
	}

	freq := b.freq
	state.Selections.Quantity = b.qty
	state.Selections.Frequency = &freq
	state.Selections.TotalAmount = b.total
	state.Step = StepSelectDeliverySlot

	return deliverySlotsPrompt
}

func (e *Engine) handleDeliverySlot(state *State, normalized string) string {
	slots := map[string]string{
		"1": "6:00 AM - 8:00 AM",
		"2": "8:00 AM - 10:00 AM",
	}

	slot, ok := slots[normalized]
	if !ok {
		return invalidOptionPrompt(2)
	}

	state.Selections.TimeSlot = slot
	state.Step = StepCollectAddress
	return addressPrompt(slot)
}

func (e *Engine) handleAddress(state *State, text string) string {
	address := strings.TrimSpace(text)
	if len(address) < 10 {
		return addressRetryPrompt
	}

	state.Selections.Address = address
	state.Step = StepCollectName
	return namePrompt
}

func (e *Engine) handleName(state *State, text string) string {
	name := strings.TrimSpace(text)
	if len(name) < 2 {
		return nameRetryPrompt
	}

	state.Selections.CustomerName = name
	state.DisplayName = name
	state.Step = StepConfirmOrder
	return confirmationPrompt(state.Selections)
}

func (e *Engine) handleConfirmation(ctx context.Context, state *State, normalized string) (string, error) {
	switch normalized {
	case "confirm":
		order, err := e.orders.PlaceOrder(ctx, state.PhoneNumber, state.Selections)
		if err != nil {
			return "", fmt.Errorf("place order: %w", err)
		}

		total := state.Selections.TotalAmount
		state.Reset()
		e.log.Info("order confirmed",
			zap.String("phone", state.PhoneNumber),
			zap.String("order_number", order.OrderNumber))
		return orderConfirmedPrompt(order.OrderNumber, total, e.supportPhone), nil
	case "cancel":
		state.Reset()
		return cancelledPrompt, nil
	default:
		return confirmRetryPrompt, nil
	}
}

func (e *Engine) handleExistingMenu(state *State, normalized string) string {
	switch normalized {
	case "1":
		return comingSoonPrompt("Repeat Last Order")
	case "2":
		return comingSoonPrompt("Modify Subscription")
	case "3":
		return comingSoonPrompt("Change Delivery Address")
	case "4":
		state.Step = StepCaptureLocation
		return locationPrompt
	case "5":
		return selfServicePrompt("pause")
	case "6":
		return selfServicePrompt("skip tomorrow")
	case "7":
		return selfServicePrompt("change qty")
	case "8":
		return selfServicePrompt("cancel subscription")
	default:
		return existingMenuRetryPrompt
	}
}

func isPincode(s string) bool {
	if len(s) != 6 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func parseChoice(input string, n int) (int, error) {
	choice, err := strconv.Atoi(input)
	if err != nil {
		return 0, errNotNumber
	}
	if choice < 1 || choice > n {
		return 0, errOutOfRange
	}
	return choice - 1, nil
}

func choiceErrorReply(err error, n int) string {
	if errors.Is(err, errNotNumber) {
		return notNumberPrompt
	}
	return invalidOptionPrompt(n)
}
