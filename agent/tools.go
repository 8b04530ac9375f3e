package agent

import (
	"context"

	"github.com/etnz/advisor"
	"github.com/etnz/advisor/renderer"
	"google.golang.org/genai"
)

// Func implements a simple Function backed by a calculator.
type Func struct {
	Decl       *genai.FunctionDeclaration
	Calculator advisor.Calculator
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }

// Call decodes the model's arguments, runs the calculator and renders
// the report. Every failure is reported through the response, so the
// model always sees why a call was rejected.
func (f *Func) Call(_ context.Context, id string, args map[string]any) *genai.FunctionResponse {
	req, err := f.Calculator.DecodeRequest(args)
	if err != nil {
		return errorResponse(id, f.Decl.Name, err)
	}
	res, err := advisor.Compute(req)
	if err != nil {
		return errorResponse(id, f.Decl.Name, err)
	}
	return outputResponse(id, f.Decl.Name, renderer.Markdown(res))
}

// Tools returns the five calculators of the engine as callable tools.
func Tools() []Function {
	return []Function{
		allocationTool,
		growthTool,
		stockTool,
		retirementTool,
		comparisonTool,
	}
}

// reportSchema is the shared response schema: every calculator answers
// with one markdown report.
var reportSchema = &genai.Schema{
	Type:        genai.TypeString,
	Description: "A markdown-formatted report with a parameter echo, the computed results, and a recommendation where applicable.",
}

var allocationTool = &Func{
	Calculator: advisor.PortfolioAllocation,
	Decl: &genai.FunctionDeclaration{
		Name:        "calculate_portfolio_allocation",
		Description: "Calculate a recommended portfolio allocation based on age and risk tolerance, using the 100-minus-age rule with a risk adjustment.",
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"age":            {Type: genai.TypeInteger, Description: "The investor's age, between 0 and 100."},
				"risk_tolerance": {Type: genai.TypeString, Description: `One of "conservative", "moderate" or "aggressive". Anything else is treated as moderate.`},
				"total_amount":   {Type: genai.TypeNumber, Description: "The total amount to invest, in dollars."},
			},
			Required: []string{"age", "risk_tolerance", "total_amount"},
		},
		Response: reportSchema,
	},
}

var growthTool = &Func{
	Calculator: advisor.CompoundGrowth,
	Decl: &genai.FunctionDeclaration{
		Name:        "calculate_compound_interest",
		Description: "Project the future value of an investment with monthly compounding and monthly contributions, including a year-by-year breakdown.",
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"principal":            {Type: genai.TypeNumber, Description: "The initial investment, in dollars."},
				"annual_rate":          {Type: genai.TypeNumber, Description: "The annual return rate as a percentage, e.g. 7 for 7%."},
				"years":                {Type: genai.TypeInteger, Description: "The investment horizon in years, positive."},
				"monthly_contribution": {Type: genai.TypeNumber, Description: "The amount added every month, in dollars."},
			},
			Required: []string{"principal", "annual_rate", "years", "monthly_contribution"},
		},
		Response: reportSchema,
	},
}

var stockTool = &Func{
	Calculator: advisor.StockEvaluation,
	Decl: &genai.FunctionDeclaration{
		Name:        "evaluate_stock_metrics",
		Description: "Evaluate a stock's fundamental metrics (P/E, dividend yield, revenue growth, debt-to-equity) into labeled signals and an overall verdict.",
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"stock_name":     {Type: genai.TypeString, Description: "The company or ticker being evaluated."},
				"current_price":  {Type: genai.TypeNumber, Description: "The current share price, in dollars."},
				"pe_ratio":       {Type: genai.TypeNumber, Description: "The price-to-earnings ratio."},
				"dividend_yield": {Type: genai.TypeNumber, Description: "The dividend yield as a percentage."},
				"revenue_growth": {Type: genai.TypeNumber, Description: "The revenue growth as a percentage; may be negative."},
				"debt_to_equity": {Type: genai.TypeNumber, Description: "The debt-to-equity ratio."},
			},
			Required: []string{"stock_name", "current_price", "pe_ratio", "dividend_yield", "revenue_growth", "debt_to_equity"},
		},
		Response: reportSchema,
	},
}

var retirementTool = &Func{
	Calculator: advisor.RetirementNeeds,
	Decl: &genai.FunctionDeclaration{
		Name:        "calculate_retirement_needs",
		Description: "Size the retirement corpus with the 4% withdrawal rule and compute the monthly saving required to reach it by retirement age.",
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"current_age":           {Type: genai.TypeInteger, Description: "The client's current age."},
				"retirement_age":        {Type: genai.TypeInteger, Description: "The target retirement age, after the current age and before 90."},
				"current_savings":       {Type: genai.TypeNumber, Description: "Savings already accumulated, in dollars."},
				"desired_annual_income": {Type: genai.TypeNumber, Description: "The desired annual income in retirement, in dollars."},
				"expected_return":       {Type: genai.TypeNumber, Description: "The expected annual return as a percentage."},
			},
			Required: []string{"current_age", "retirement_age", "current_savings", "desired_annual_income", "expected_return"},
		},
		Response: reportSchema,
	},
}

var comparisonTool = &Func{
	Calculator: advisor.InvestmentComparison,
	Decl: &genai.FunctionDeclaration{
		Name:        "compare_investment_options",
		Description: "Compare two investment options side by side on future value and risk-adjusted return, with a recommendation when one option clearly dominates.",
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"option_a_name":     {Type: genai.TypeString, Description: "Name of the first option."},
				"option_a_return":   {Type: genai.TypeNumber, Description: "Expected annual return of the first option, as a percentage."},
				"option_a_risk":     {Type: genai.TypeString, Description: `Risk level of the first option: "low", "medium" or "high". Anything else is treated as medium.`},
				"option_b_name":     {Type: genai.TypeString, Description: "Name of the second option."},
				"option_b_return":   {Type: genai.TypeNumber, Description: "Expected annual return of the second option, as a percentage."},
				"option_b_risk":     {Type: genai.TypeString, Description: `Risk level of the second option: "low", "medium" or "high".`},
				"investment_amount": {Type: genai.TypeNumber, Description: "The amount invested in either option, in dollars."},
				"time_horizon":      {Type: genai.TypeInteger, Description: "The investment horizon in years, positive."},
			},
			Required: []string{
				"option_a_name", "option_a_return", "option_a_risk",
				"option_b_name", "option_b_return", "option_b_risk",
				"investment_amount", "time_horizon",
			},
		},
		Response: reportSchema,
	},
}
