package conversation

import "context"

// Step is the discrete position in the WhatsApp ordering dialogue for one
// phone number.
type Step string

const (
	StepWelcome                 Step = "welcome"
	StepCustomerType            Step = "customer_type"
	StepCaptureLocation         Step = "capture_location"
	StepShowCategories          Step = "show_categories"
	StepShowProductTypes        Step = "show_product_types"
	StepShowCharacteristics     Step = "show_characteristics"
	StepShowSizes               Step = "show_sizes"
	StepSelectQuantityFrequency Step = "select_quantity_frequency"
	StepSelectDeliverySlot      Step = "select_delivery_slot"
	StepCollectAddress          Step = "collect_address"
	StepCollectName             Step = "collect_name"
	StepConfirmOrder            Step = "confirm_order"
	StepExistingMenu            Step = "existing_menu"
	StepSelfServiceMenu         Step = "self_service_menu"
)

// stepHierarchy maps each step to its predecessor for back navigation.
// Steps absent from the table back up to welcome.
var stepHierarchy = map[Step]Step{
	StepCustomerType:            StepWelcome,
	StepCaptureLocation:         StepCustomerType,
	StepShowCategories:          StepCaptureLocation,
	StepShowProductTypes:        StepShowCategories,
	StepShowCharacteristics:     StepShowProductTypes,
	StepShowSizes:               StepShowCharacteristics,
	StepSelectQuantityFrequency: StepShowSizes,
	StepSelectDeliverySlot:      StepSelectQuantityFrequency,
	StepCollectAddress:          StepSelectDeliverySlot,
	StepCollectName:             StepCollectAddress,
	StepConfirmOrder:            StepCollectName,
	StepSelfServiceMenu:         StepExistingMenu,
}

// PreviousStep returns the predecessor of the given step.
func PreviousStep(s Step) Step {
	if prev, ok := stepHierarchy[s]; ok {
		return prev
	}
	return StepWelcome
}

// Frequency describes a chosen delivery cadence.
type Frequency struct {
	Type string `json:"type"` // once, daily, alternate_day, custom
	Name string `json:"name"`
	Days int    `json:"days"`
}

// Selections accumulates the customer's choices across the dialogue. Only
// fields for steps already passed are populated; handlers validate the fields
// they depend on before using them.
type Selections struct {
	CategoryID         string     `json:"selected_category_id,omitempty"`
	CategoryName       string     `json:"selected_category_name,omitempty"`
	ProductTypeID      string     `json:"selected_product_type_id,omitempty"`
	ProductTypeName    string     `json:"selected_product_type_name,omitempty"`
	CharacteristicID   string     `json:"selected_characteristic_id,omitempty"`
	CharacteristicName string     `json:"selected_characteristic_name,omitempty"`
	SizeID             string     `json:"selected_size_id,omitempty"`
	SizeName           string     `json:"selected_size_name,omitempty"`
	SizeValue          string     `json:"selected_size_value,omitempty"`
	SizePrice          float64    `json:"selected_size_price,omitempty"`
	Quantity           int        `json:"selected_quantity,omitempty"`
	Frequency          *Frequency `json:"delivery_frequency,omitempty"`
	TimeSlot           string     `json:"delivery_time_slot,omitempty"`
	Pincode            string     `json:"delivery_pincode,omitempty"`
	Area               string     `json:"delivery_area,omitempty"`
	Address            string     `json:"delivery_address,omitempty"`
	CustomerName       string     `json:"customer_name,omitempty"`
	TotalAmount        float64    `json:"total_amount,omitempty"`
}

// IsEmpty reports whether no selection has been recorded yet.
func (s Selections) IsEmpty() bool {
	return s == (Selections{})
}

// State is the persisted conversation record for one phone number.
type State struct {
	PhoneNumber string     `json:"phone_number"`
	DisplayName string     `json:"display_name,omitempty"`
	Step        Step       `json:"step"`
	Selections  Selections `json:"selections"`
}

// NewState returns a fresh conversation at the welcome step.
func NewState(phoneNumber string) *State {
	return &State{PhoneNumber: phoneNumber, Step: StepWelcome}
}

// Reset returns the conversation to the welcome step and clears all selections.
func (s *State) Reset() {
	s.Step = StepWelcome
	s.Selections = Selections{}
}

// StateStore persists one State per phone number.
type StateStore interface {
	Get(ctx context.Context, phoneNumber string) (*State, error)
	Save(ctx context.Context, state *State) error
}
