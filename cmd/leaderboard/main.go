// Package main is the entry point for the leaderboard service.
//
//	@title						Team Usage Leaderboard API
//	@version					1.0
//	@description				Aggregates LLM gateway usage analytics into per-team dashboard data: token totals, time series, success rates, and cost efficiency.
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
package main

func main() {
	Execute()
}
