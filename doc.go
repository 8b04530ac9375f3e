// Package advisor provides a set of deterministic financial-planning
// calculators designed to be invoked as callable tools by an advisory
// agent or directly from a CLI.
//
// The core functionalities include:
//   - Portfolio Allocation: age and risk-tolerance based asset splits,
//     with fixed sub-splits for the stock and bond buckets.
//   - Compound Growth Projection: future value of a lump sum plus monthly
//     contributions, with a sampled year-by-year series.
//   - Stock Metric Classification: a scored-signal evaluation of P/E,
//     dividend yield, revenue growth and debt-to-equity.
//   - Retirement Needs Sizing: corpus sizing from the 4% withdrawal rule
//     and the monthly saving required to reach it.
//   - Investment Comparison: side-by-side future value and risk-adjusted
//     ranking of two options.
//
// Every calculator is a pure function of its request: no shared state, no
// randomness, no clock. For any fixed input the output is bit-for-bit
// reproducible, which is the defining testable property of this package.
// Rounding is applied only at render time (see the renderer package),
// never to intermediate values.
package advisor
