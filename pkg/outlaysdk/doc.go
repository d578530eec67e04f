// Package outlaysdk is a typed Go client for the Outlay expense tracking
// API. It covers the public auth endpoints and, through Session, the
// bearer-authenticated expense endpoints.
//
// Basic usage:
//
//	client := outlaysdk.NewClient("http://localhost:8080")
//	session, err := client.Login(ctx, "alice", "password")
//	if err != nil { ... }
//	expense, err := session.CreateExpense(ctx, outlaysdk.ExpenseRequest{Amount: 12.50})
//
// The package doubles as the single source of truth for the API's wire
// types; the server handlers marshal these same structs.
package outlaysdk
