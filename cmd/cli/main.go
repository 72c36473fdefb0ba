package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL  string
	timeout  time.Duration
	tenantID string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cartera-cli",
		Short: "Cartera CLI tool",
		Long:  `A command line interface for interacting with the Cartera reconciliation API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the Cartera API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	rootCmd.PersistentFlags().StringVar(&tenantID, "tenant", "", "Tenant ID")

	recalculateCmd := &cobra.Command{
		Use:   "recalculate [counterparty-id...]",
		Short: "Rebuild allocations for one or more counterparties",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) == 1 {
				recalculateOne(args[0])
				return
			}
			recalculateBatch(args)
		},
	}

	var (
		role    string
		subUnit string
		asOf    string
	)

	pendingCmd := &cobra.Command{
		Use:   "pending [counterparty-id]",
		Short: "List invoices with an outstanding balance",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			listPending(args[0], role, subUnit, asOf)
		},
	}
	pendingCmd.Flags().StringVar(&role, "role", "receivable", "Balance role (receivable or payable)")
	pendingCmd.Flags().StringVar(&subUnit, "sub-unit", "", "Filter by sub-unit")
	pendingCmd.Flags().StringVar(&asOf, "as-of", "", "Balance as of date (YYYY-MM-DD)")

	allocationsCmd := &cobra.Command{
		Use:   "allocations [counterparty-id]",
		Short: "List persisted allocation records",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			listAllocations(args[0], role)
		},
	}
	allocationsCmd.Flags().StringVar(&role, "role", "receivable", "Balance role (receivable or payable)")

	rootCmd.AddCommand(recalculateCmd)
	rootCmd.AddCommand(pendingCmd)
	rootCmd.AddCommand(allocationsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func requireTenant() {
	if tenantID == "" {
		fmt.Println("--tenant is required")
		os.Exit(1)
	}
}

func recalculateOne(counterpartyID string) {
	requireTenant()

	body, _ := json.Marshal(map[string]string{"tenant_id": tenantID})
	postJSON(fmt.Sprintf("%s/api/v1/counterparties/%s/recalculate", baseURL, url.PathEscape(counterpartyID)), body)
}

func recalculateBatch(counterpartyIDs []string) {
	requireTenant()

	body, _ := json.Marshal(map[string]any{
		"tenant_id":        tenantID,
		"counterparty_ids": counterpartyIDs,
	})
	postJSON(baseURL+"/api/v1/recalculations", body)
}

func listPending(counterpartyID, role, subUnit, asOf string) {
	requireTenant()

	params := url.Values{}
	params.Set("tenant_id", tenantID)
	params.Set("role", role)
	if subUnit != "" {
		params.Set("sub_unit", subUnit)
	}
	if asOf != "" {
		params.Set("as_of", asOf)
	}

	getJSON(fmt.Sprintf("%s/api/v1/counterparties/%s/pending-invoices?%s",
		baseURL, url.PathEscape(counterpartyID), params.Encode()))
}

func listAllocations(counterpartyID, role string) {
	requireTenant()

	params := url.Values{}
	params.Set("tenant_id", tenantID)
	params.Set("role", role)

	getJSON(fmt.Sprintf("%s/api/v1/counterparties/%s/allocations?%s",
		baseURL, url.PathEscape(counterpartyID), params.Encode()))
}

func postJSON(endpoint string, body []byte) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(endpoint, "application/json", bytes.NewReader(body))
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	printResponse(resp)
}

func getJSON(endpoint string) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(endpoint)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	printResponse(resp)
}

func printResponse(resp *http.Response) {
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		fmt.Printf("Request FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, body, "", "  "); err != nil {
		fmt.Println(string(body))
		return
	}
	fmt.Println(pretty.String())
}
