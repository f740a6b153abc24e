package models

import "sort"

// CPACodes maps the commonly used CPA transaction codes to their
// descriptions. The table is advisory: the standard defines more codes
// than are listed here, so an unknown code is a validation warning rather
// than an error.
var CPACodes = map[int]string{
	200: "Payroll Deposit",
	201: "Special Payroll",
	202: "Vacation Pay",
	203: "Overtime Pay",
	204: "Adjustment",
	205: "Advance",
	230: "Pension",
	231: "Federal Pension",
	232: "Provincial Pension",
	233: "Private Pension",
	240: "Annuity",
	250: "Dividend",
	260: "Investment Interest",
	270: "Rent",
	280: "Expense Reimbursement",
	308: "Income Tax Refund",
	311: "Utility Bill Payment",
	330: "Telephone Bill Payment",
	350: "Insurance Premium",
	370: "Mortgage Payment",
	380: "Property Tax",
	430: "Loan Payment",
	450: "Miscellaneous Payment",
	452: "Instalment Payment",
	460: "Accounts Payable",
	470: "Tax Payment",
	480: "Charitable Donation",
	600: "Savings Deposit",
	610: "Retirement Savings Plan",
	630: "Term Deposit",
}

// KnownCPACode reports whether the code appears in the advisory table.
func KnownCPACode(code int) bool {
	_, ok := CPACodes[code]
	return ok
}

// CPACodeDescription returns the description for a known code, or the
// empty string.
func CPACodeDescription(code int) string {
	return CPACodes[code]
}

// SortedCPACodes returns the known codes in ascending order.
func SortedCPACodes() []int {
	codes := make([]int, 0, len(CPACodes))
	for code := range CPACodes {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	return codes
}
