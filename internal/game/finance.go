package game

import "fmt"

// Finance tracks a wrestler's running balance plus append-only income
// and expense logs. The logs are audit trails and are never pruned.
type Finance struct {
	Money          int      `json:"money"`
	IncomeHistory  []string `json:"income_history"`
	ExpenseHistory []string `json:"expense_history"`
}

// AddIncome credits the balance and records the event.
func (f *Finance) AddIncome(amount int, reason string) {
	f.Money += amount
	f.IncomeHistory = append(f.IncomeHistory, fmt.Sprintf("+$%d: %s", amount, reason))
}

// AddExpense debits the balance and records the event. The balance may
// go negative; debt is the player's problem, not the ledger's.
func (f *Finance) AddExpense(amount int, reason string) {
	f.Money -= amount
	f.ExpenseHistory = append(f.ExpenseHistory, fmt.Sprintf("-$%d: %s", amount, reason))
}
