package advisor

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
)

// Profile is a client profile gathered by the advisor: who the client is
// and what they bring. It carries enough to drive an allocation, a growth
// projection and a retirement plan in one pass.
//
// Profiles are stored as free-form JSON documents; DecodeProfile pulls
// the known fields out with jsonpath queries so that extra keys (notes,
// conversation history, third-party data) never break decoding.
type Profile struct {
	Name          string
	Age           int
	RiskTolerance RiskTolerance

	Savings             float64
	MonthlyContribution float64
	ExpectedReturn      Percent

	RetirementAge       int
	DesiredAnnualIncome float64
}

/*
A minimal profile document:

	{
	  "client":  {"name": "Sarah", "age": 35, "risk_tolerance": "moderate"},
	  "finances": {
	    "savings": 40000,
	    "monthly_contribution": 1000,
	    "expected_return": 8
	  },
	  "retirement": {"age": 65, "desired_annual_income": 80000}
	}
*/
const (
	pathName          = "$.client.name"
	pathAge           = "$.client.age"
	pathRisk          = "$.client.risk_tolerance"
	pathSavings       = "$.finances.savings"
	pathContribution  = "$.finances.monthly_contribution"
	pathReturn        = "$.finances.expected_return"
	pathRetirementAge = "$.retirement.age"
	pathIncome        = "$.retirement.desired_annual_income"
)

// DecodeProfile decodes a client profile from its JSON document.
func DecodeProfile(r io.Reader) (*Profile, error) {
	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: profile is not valid JSON: %v", ErrInvalidInput, err)
	}

	p := &Profile{}
	var err error
	if p.Name, err = pathString(doc, pathName); err != nil {
		return nil, err
	}
	if p.Age, err = pathInt(doc, pathAge); err != nil {
		return nil, err
	}
	risk, err := pathString(doc, pathRisk)
	if err != nil {
		return nil, err
	}
	p.RiskTolerance = ParseRiskTolerance(risk)

	if p.Savings, err = pathFloat(doc, pathSavings); err != nil {
		return nil, err
	}
	if p.MonthlyContribution, err = pathFloat(doc, pathContribution); err != nil {
		return nil, err
	}
	ret, err := pathFloat(doc, pathReturn)
	if err != nil {
		return nil, err
	}
	p.ExpectedReturn = Percent(ret)

	if p.RetirementAge, err = pathInt(doc, pathRetirementAge); err != nil {
		return nil, err
	}
	if p.DesiredAnnualIncome, err = pathFloat(doc, pathIncome); err != nil {
		return nil, err
	}
	return p, nil
}

// AllocationRequest derives the allocation request from the profile.
func (p *Profile) AllocationRequest() AllocationRequest {
	return AllocationRequest{
		Age:           p.Age,
		RiskTolerance: p.RiskTolerance,
		TotalAmount:   p.Savings,
	}
}

// GrowthRequest derives the growth request from the profile, projecting
// to retirement age.
func (p *Profile) GrowthRequest() GrowthRequest {
	return GrowthRequest{
		Principal:           p.Savings,
		AnnualRate:          p.ExpectedReturn,
		Years:               p.RetirementAge - p.Age,
		MonthlyContribution: p.MonthlyContribution,
	}
}

// RetirementRequest derives the retirement request from the profile.
func (p *Profile) RetirementRequest() RetirementRequest {
	return RetirementRequest{
		CurrentAge:          p.Age,
		RetirementAge:       p.RetirementAge,
		CurrentSavings:      p.Savings,
		DesiredAnnualIncome: p.DesiredAnnualIncome,
		ExpectedReturn:      p.ExpectedReturn,
	}
}

func pathValue(doc any, path string) (any, error) {
	v, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("%w: profile field %q not found", ErrInvalidInput, path)
	}
	// jsonpath is never clear about whether it returns a list of one
	// answer or a single answer; keep the first one if any.
	if list, ok := v.([]any); ok && len(list) > 0 {
		v = list[0]
	}
	return v, nil
}

func pathString(doc any, path string) (string, error) {
	v, err := pathValue(doc, path)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: profile field %q is not a string but %T", ErrInvalidInput, path, v)
	}
	return s, nil
}

func pathFloat(doc any, path string) (float64, error) {
	v, err := pathValue(doc, path)
	if err != nil {
		return 0, err
	}
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("%w: profile field %q is not a number but %T", ErrInvalidInput, path, v)
	}
	return f, nil
}

func pathInt(doc any, path string) (int, error) {
	f, err := pathFloat(doc, path)
	if err != nil {
		return 0, err
	}
	i := int(f)
	if float64(i) != f {
		return 0, fmt.Errorf("%w: profile field %q must be a whole number, got %g", ErrInvalidInput, path, f)
	}
	return i, nil
}
