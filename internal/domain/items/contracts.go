package items

// ContractRequirement is a single line of a Wikelo trade contract: an item
// referenced by id plus the quantity demanded.
type ContractRequirement struct {
	ItemID   string `json:"item_id" yaml:"item_id"`
	Quantity uint32 `json:"quantity" yaml:"quantity"`
}

// Contract is a Wikelo trade contract: hand over the requirements, receive
// the reward. Requirements reference registry items by id; resolve them with
// Registry-backed ResolveContract.
type Contract struct {
	Name         string                `json:"name" yaml:"name"`
	Requirements []ContractRequirement `json:"requirements" yaml:"requirements"`
	Reward       string                `json:"reward,omitempty" yaml:"reward,omitempty"`
}

// ResolvedRequirement pairs a contract line with its registry item. Item is
// nil when the id is unknown to the registry.
type ResolvedRequirement struct {
	Requirement ContractRequirement
	Item        *Item
}

// ContractPlan is the result of resolving a contract against a registry.
type ContractPlan struct {
	Contract Contract
	Lines    []ResolvedRequirement
	// UnknownIDs lists requirement ids the registry does not know, in
	// requirement order. Intel gaps are reported, never silently dropped.
	UnknownIDs []string
}

// Complete reports whether every requirement resolved to a known item.
func (p *ContractPlan) Complete() bool {
	return len(p.UnknownIDs) == 0
}

// ResolveContract looks up every requirement of c in the registry. It is
// total: unknown ids land in UnknownIDs rather than failing the call.
func ResolveContract(r *Registry, c Contract) ContractPlan {
	plan := ContractPlan{
		Contract: c,
		Lines:    make([]ResolvedRequirement, 0, len(c.Requirements)),
	}
	for _, req := range c.Requirements {
		item, ok := r.Get(req.ItemID)
		if !ok {
			plan.UnknownIDs = append(plan.UnknownIDs, req.ItemID)
		}
		plan.Lines = append(plan.Lines, ResolvedRequirement{Requirement: req, Item: item})
	}
	return plan
}
