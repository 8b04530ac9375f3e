package agent

import "google.golang.org/genai"

const model = "gemini-2.5-pro"

// newFacilitator creates the Advisor, the expert in charge of the
// conversation. It sees the other experts as tools.
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Advisor",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a professional financial advisor with expertise in investment
			strategies, portfolio management and risk assessment. You are in charge
			of the conversation and of solving the client's request.

			Learn about each expert's skill from the Tools and ask them questions.
			They are at your service and 100% dedicated to you; they keep context of
			your previous questions.

			Remember client details as they emerge: age, income, savings, goals,
			risk tolerance. Ask the Quant whenever a calculation would help, and
			synthesize its reports with your own expertise instead of repeating
			them verbatim. Explain the reasoning behind recommendations, and always
			remind the client that this is educational advice, not professional
			financial planning.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewAnalyst creates the market analyst, grounded by Google Search.
func NewAnalyst() *Expert {
	return &Expert{
		Name: "Analyst",
		Description: `This is an expert market analyst,
		very well aware of financial products and institutions and of the latest
		news about funds and companies.
		Ask the Analyst whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert market analyst. You can search and find anything
			related to financial institutions, companies, markets and funds. You
			leverage Google Search to ground your assertions in solid truth, you can
			get the latest news, and you know how to relate them to the client's
			situation.
		`}}},
		},
	}
}

// NewQuant creates the quantitative expert carrying the calculation
// engine as tools.
func NewQuant() *Expert {
	tools := Tools()
	return &Expert{
		Name: "Quant",
		Description: `This is the Quant. It performs exact financial calculations:
		portfolio allocation by age and risk tolerance, compound growth
		projections, stock fundamental scoring, retirement needs sizing, and
		side-by-side investment comparisons.
		Ask the Quant whenever a number must be right.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(tools)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a quantitative financial expert with access to exact calculation
			tools. Use the tools proactively whenever a calculation would help; do
			not estimate numbers the tools can compute. Relay the tool reports
			faithfully; they are deterministic and already formatted.
		`}}},
		},
		Library: NewLibrary(tools),
	}
}
