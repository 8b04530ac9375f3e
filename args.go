package advisor

import "fmt"

// This file decodes the engine's external boundary: one mapping of named
// parameters per invocation, the shape delivered by function-calling
// models and by the profile loader. Required fields that are missing or
// mistyped fail with ErrInvalidInput; nothing is silently defaulted
// except where a calculator's own contract is lenient (risk tiers).

// DecodeRequest decodes a parameter map into the calculator's typed
// request.
func (c Calculator) DecodeRequest(args map[string]any) (Request, error) {
	switch c {
	case PortfolioAllocation:
		return decodeAllocation(args)
	case CompoundGrowth:
		return decodeGrowth(args)
	case StockEvaluation:
		return decodeStockEvaluation(args)
	case RetirementNeeds:
		return decodeRetirement(args)
	case InvestmentComparison:
		return decodeComparison(args)
	default:
		return nil, fmt.Errorf("%w: unknown calculator %d", ErrInvalidInput, c)
	}
}

func decodeAllocation(args map[string]any) (Request, error) {
	age, err := intArg(args, "age")
	if err != nil {
		return nil, err
	}
	risk, err := stringArg(args, "risk_tolerance")
	if err != nil {
		return nil, err
	}
	total, err := floatArg(args, "total_amount")
	if err != nil {
		return nil, err
	}
	return AllocationRequest{
		Age:           age,
		RiskTolerance: ParseRiskTolerance(risk),
		TotalAmount:   total,
	}, nil
}

func decodeGrowth(args map[string]any) (Request, error) {
	principal, err := floatArg(args, "principal")
	if err != nil {
		return nil, err
	}
	rate, err := floatArg(args, "annual_rate")
	if err != nil {
		return nil, err
	}
	years, err := intArg(args, "years")
	if err != nil {
		return nil, err
	}
	contribution, err := floatArg(args, "monthly_contribution")
	if err != nil {
		return nil, err
	}
	return GrowthRequest{
		Principal:           principal,
		AnnualRate:          Percent(rate),
		Years:               years,
		MonthlyContribution: contribution,
	}, nil
}

func decodeStockEvaluation(args map[string]any) (Request, error) {
	name, err := stringArg(args, "stock_name")
	if err != nil {
		return nil, err
	}
	price, err := floatArg(args, "current_price")
	if err != nil {
		return nil, err
	}
	pe, err := floatArg(args, "pe_ratio")
	if err != nil {
		return nil, err
	}
	yield, err := floatArg(args, "dividend_yield")
	if err != nil {
		return nil, err
	}
	growth, err := floatArg(args, "revenue_growth")
	if err != nil {
		return nil, err
	}
	debt, err := floatArg(args, "debt_to_equity")
	if err != nil {
		return nil, err
	}
	return StockEvaluationRequest{
		Name:          name,
		CurrentPrice:  price,
		PERatio:       pe,
		DividendYield: Percent(yield),
		RevenueGrowth: Percent(growth),
		DebtToEquity:  debt,
	}, nil
}

func decodeRetirement(args map[string]any) (Request, error) {
	currentAge, err := intArg(args, "current_age")
	if err != nil {
		return nil, err
	}
	retirementAge, err := intArg(args, "retirement_age")
	if err != nil {
		return nil, err
	}
	savings, err := floatArg(args, "current_savings")
	if err != nil {
		return nil, err
	}
	income, err := floatArg(args, "desired_annual_income")
	if err != nil {
		return nil, err
	}
	ret, err := floatArg(args, "expected_return")
	if err != nil {
		return nil, err
	}
	return RetirementRequest{
		CurrentAge:          currentAge,
		RetirementAge:       retirementAge,
		CurrentSavings:      savings,
		DesiredAnnualIncome: income,
		ExpectedReturn:      Percent(ret),
	}, nil
}

func decodeComparison(args map[string]any) (Request, error) {
	a, err := decodeOption(args, "option_a")
	if err != nil {
		return nil, err
	}
	b, err := decodeOption(args, "option_b")
	if err != nil {
		return nil, err
	}
	amount, err := floatArg(args, "investment_amount")
	if err != nil {
		return nil, err
	}
	horizon, err := intArg(args, "time_horizon")
	if err != nil {
		return nil, err
	}
	return ComparisonRequest{
		OptionA:          a,
		OptionB:          b,
		InvestmentAmount: amount,
		TimeHorizonYears: horizon,
	}, nil
}

func decodeOption(args map[string]any, prefix string) (InvestmentOption, error) {
	name, err := stringArg(args, prefix+"_name")
	if err != nil {
		return InvestmentOption{}, err
	}
	ret, err := floatArg(args, prefix+"_return")
	if err != nil {
		return InvestmentOption{}, err
	}
	risk, err := stringArg(args, prefix+"_risk")
	if err != nil {
		return InvestmentOption{}, err
	}
	return InvestmentOption{
		Name:           name,
		ExpectedReturn: Percent(ret),
		Risk:           ParseRiskTier(risk),
	}, nil
}

func floatArg(args map[string]any, name string) (float64, error) {
	v, ok := args[name]
	if !ok {
		return 0, fmt.Errorf("%w: missing argument %q", ErrInvalidInput, name)
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("%w: argument %q is not a number but %T", ErrInvalidInput, name, v)
	}
}

// intArg accepts whole-valued floats too: JSON decoding and function
// calls deliver every number as float64.
func intArg(args map[string]any, name string) (int, error) {
	f, err := floatArg(args, name)
	if err != nil {
		return 0, err
	}
	i := int(f)
	if float64(i) != f {
		return 0, fmt.Errorf("%w: argument %q must be a whole number, got %g", ErrInvalidInput, name, f)
	}
	return i, nil
}

func stringArg(args map[string]any, name string) (string, error) {
	v, ok := args[name]
	if !ok {
		return "", fmt.Errorf("%w: missing argument %q", ErrInvalidInput, name)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: argument %q is not a string but %T", ErrInvalidInput, name, v)
	}
	return s, nil
}
