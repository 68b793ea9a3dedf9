// internal/models/entity.go
package models

import "encoding/json"

// EntityType identifies what kind of value an entity carries (gstin, pan, amount, ...)
type EntityType string

const (
	EntityGSTIN          EntityType = "gstin"
	EntityPAN            EntityType = "pan"
	EntityAadhaar        EntityType = "aadhaar"
	EntityVehicle        EntityType = "vehicle"
	EntityPhone          EntityType = "phone"
	EntityEmail          EntityType = "email"
	EntityAmount         EntityType = "amount"
	EntityDate           EntityType = "date"
	EntityLocation       EntityType = "location"
	EntityCompany        EntityType = "company"
	EntityPerson         EntityType = "person"
	EntityProduct        EntityType = "product"
	EntityDocument       EntityType = "document"
	EntityLoanType       EntityType = "loan_type"
	EntityInsuranceType  EntityType = "insurance_type"
	EntityEmploymentType EntityType = "employment_type"
	EntityGoalType       EntityType = "goal_type"
	EntityTenure         EntityType = "tenure"
	EntityAge            EntityType = "age"
	EntityAnnualIncome   EntityType = "annual_income"
	EntityCreditScore    EntityType = "credit_score"
	EntityInvestmentType EntityType = "investment_type"
	EntityBankName       EntityType = "bank_name"
)

// Span is the character range a value occupied in the source text
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Entity is one extracted value with provenance and confidence
type Entity struct {
	Type            EntityType        `json:"type"`
	Value           string            `json:"value"`
	NormalizedValue string            `json:"normalizedValue,omitempty"`
	Confidence      float64           `json:"confidence"`
	Position        Span              `json:"position"`
	Metadata        map[string]string `json:"metadata,omitempty"`
}

// BestValue prefers the normalized form when one exists
func (e Entity) BestValue() string {
	if e.NormalizedValue != "" {
		return e.NormalizedValue
	}
	return e.Value
}

// EntityValues holds every entity of one type in extraction order.
// On the wire a single entity serializes as a bare object and multiple
// entities as an array, matching what downstream consumers expect.
type EntityValues []Entity

func (v EntityValues) MarshalJSON() ([]byte, error) {
	if len(v) == 1 {
		return json.Marshal(v[0])
	}
	return json.Marshal([]Entity(v))
}

func (v *EntityValues) UnmarshalJSON(data []byte) error {
	var many []Entity
	if err := json.Unmarshal(data, &many); err == nil {
		*v = many
		return nil
	}
	var one Entity
	if err := json.Unmarshal(data, &one); err != nil {
		return err
	}
	*v = EntityValues{one}
	return nil
}

// ExtractedEntities maps entity type to everything found for that type
type ExtractedEntities map[EntityType]EntityValues

// First returns the earliest entity of the given type
func (e ExtractedEntities) First(t EntityType) (Entity, bool) {
	vs := e[t]
	if len(vs) == 0 {
		return Entity{}, false
	}
	return vs[0], true
}

// Has reports whether at least one entity of the given type was found
func (e ExtractedEntities) Has(t EntityType) bool {
	return len(e[t]) > 0
}

// Clone returns a deep copy so callers can merge without aliasing
func (e ExtractedEntities) Clone() ExtractedEntities {
	out := make(ExtractedEntities, len(e))
	for t, vs := range e {
		cp := make(EntityValues, len(vs))
		copy(cp, vs)
		out[t] = cp
	}
	return out
}
