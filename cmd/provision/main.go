// Command provision creates the SharePoint lists and columns backing the
// portal, and optionally seeds them with sample data for development
// sites. It is idempotent for lists (existing lists are reused) but not
// for columns or seed items; run it against fresh sites.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/nimbusworks/intranet_portal_app/internal/adapters/sharepoint"
	"github.com/nimbusworks/intranet_portal_app/internal/utils/mapping"
	"github.com/nimbusworks/intranet_portal_app/pkg/config"
	spclient "github.com/nimbusworks/intranet_portal_app/pkg/sharepoint"
)

// seedConcurrency caps parallel item creation so the Graph API throttling
// limits are not tripped. Throttled requests are not retried; re-run the
// seed instead.
const seedConcurrency = 5

type listSpec struct {
	name string
	dict mapping.Dictionary
	// lookup column base names to their target list
	lookups map[string]string
}

func listSpecs(lists sharepoint.ListNames) []listSpec {
	return []listSpec{
		{name: lists.Assets, dict: mapping.AssetDict},
		{name: lists.Payments, dict: mapping.PaymentDict},
		{name: lists.Employees, dict: mapping.EmployeeDict, lookups: map[string]string{"Division": "Divisions"}},
		{name: lists.Leaves, dict: mapping.LeaveDict},
		{name: lists.KRAs, dict: mapping.KRADict},
		{name: lists.KPIs, dict: mapping.KPIDict, lookups: map[string]string{"Kra": lists.KRAs}},
		{name: lists.Objectives, dict: mapping.ObjectiveDict, lookups: map[string]string{"Kra": lists.KRAs}},
		{name: lists.Projects, dict: mapping.ProjectDict, lookups: map[string]string{"Objective": lists.Objectives}},
		{name: lists.Tasks, dict: mapping.TaskDict, lookups: map[string]string{"Project": lists.Projects}},
		{name: lists.Risks, dict: mapping.RiskDict, lookups: map[string]string{"Project": lists.Projects}},
		{name: lists.Events, dict: mapping.CalendarDict},
	}
}

// builtinColumns ship with every list; never created explicitly.
var builtinColumns = map[string]bool{
	"Title":    true,
	"Created":  true,
	"Author":   true,
	"Modified": true,
	"Editor":   true,
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	root := &cobra.Command{
		Use:           "provision",
		Short:         "Provision and seed the portal's SharePoint lists",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newListsCmd(logger), newSeedCmd(logger))

	if err := root.Execute(); err != nil {
		logger.Error("Provisioning failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func newStore() (*spclient.Client, *config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	store := spclient.NewClient(spclient.Config{
		TenantID:     cfg.TenantID,
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		SiteHostname: cfg.SiteHostname,
		SitePath:     cfg.SitePath,
		BaseURL:      cfg.GraphBaseURL,
	})
	return store, cfg, nil
}

func newListsCmd(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "lists",
		Short: "Create the backing lists and their columns",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, cfg, err := newStore()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			siteID, err := store.ResolveSite(ctx)
			if err != nil {
				return fmt.Errorf("resolving site: %w", err)
			}

			// The division lookup needs its target list first.
			divisionsID, err := store.EnsureList(ctx, siteID, "Divisions")
			if err != nil {
				return fmt.Errorf("ensuring Divisions list: %w", err)
			}
			logger.Info("List ready", slog.String("list", "Divisions"), slog.String("list_id", divisionsID))

			listIDs := map[string]string{"Divisions": divisionsID}
			specs := listSpecs(cfg.Lists)
			for _, spec := range specs {
				listID, err := store.EnsureList(ctx, siteID, spec.name)
				if err != nil {
					return fmt.Errorf("ensuring list %s: %w", spec.name, err)
				}
				listIDs[spec.name] = listID
				logger.Info("List ready", slog.String("list", spec.name), slog.String("list_id", listID))
			}

			for _, spec := range specs {
				if err := provisionColumns(ctx, store, siteID, listIDs, spec, logger); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func provisionColumns(ctx context.Context, store *spclient.Client, siteID string, listIDs map[string]string, spec listSpec, logger *slog.Logger) error {
	listID := listIDs[spec.name]
	live, err := store.ListColumns(ctx, siteID, listID)
	if err != nil {
		return fmt.Errorf("listing columns of %s: %w", spec.name, err)
	}
	existing := make(map[string]bool, len(live))
	for _, col := range live {
		existing[col.Name] = true
	}

	for _, def := range spec.dict.Defs() {
		name, definition := columnDefinition(def, spec, listIDs)
		if name == "" || builtinColumns[name] || existing[name] {
			continue
		}
		if err := store.CreateColumn(ctx, siteID, listID, definition); err != nil {
			return fmt.Errorf("creating column %s.%s: %w", spec.name, name, err)
		}
		logger.Info("Column created", slog.String("list", spec.name), slog.String("column", name))
	}
	return nil
}

// columnDefinition translates a dictionary entry into a Graph column
// definition. Lookup ids are created as lookup columns under their base
// name; the store exposes the id as <base>LookupId automatically.
func columnDefinition(def mapping.FieldDef, spec listSpec, listIDs map[string]string) (string, map[string]any) {
	switch def.Type {
	case mapping.Number:
		return def.External, map[string]any{"name": def.External, "number": map[string]any{}}
	case mapping.Boolean:
		return def.External, map[string]any{"name": def.External, "boolean": map[string]any{}}
	case mapping.Date:
		return def.External, map[string]any{"name": def.External, "dateTime": map[string]any{}}
	case mapping.JSONBlob:
		return def.External, map[string]any{"name": def.External, "text": map[string]any{"allowMultipleLines": true}}
	case mapping.LookupID:
		base := strings.TrimSuffix(def.External, "LookupId")
		target := spec.lookups[base]
		targetID := listIDs[target]
		if targetID == "" {
			return "", nil
		}
		return base, map[string]any{
			"name":   base,
			"lookup": map[string]any{"listId": targetID, "columnName": "Title"},
		}
	default:
		return def.External, map[string]any{"name": def.External, "text": map[string]any{}}
	}
}

func newSeedCmd(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert sample data for development sites",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, cfg, err := newStore()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			siteID, err := store.ResolveSite(ctx)
			if err != nil {
				return fmt.Errorf("resolving site: %w", err)
			}

			g, gctx := errgroup.WithContext(ctx)
			g.SetLimit(seedConcurrency)
			for listName, items := range sampleData(cfg.Lists) {
				listID, err := store.ResolveList(ctx, siteID, listName)
				if err != nil {
					return fmt.Errorf("resolving list %s: %w", listName, err)
				}
				listName := listName
				for _, fields := range items {
					fields := fields
					g.Go(func() error {
						item, err := store.CreateItem(gctx, siteID, listID, fields)
						if err != nil {
							return fmt.Errorf("seeding %s: %w", listName, err)
						}
						logger.Info("Seeded item",
							slog.String("list", listName),
							slog.String("item_id", item.ID))
						return nil
					})
				}
			}
			return g.Wait()
		},
	}
}

// sampleData is a small but linked data set: one KRA with a KPI and an
// objective, a project under it with a task and a risk, plus standalone
// records for the other modules. Lookup columns are left unset because
// item ids are not known until creation.
func sampleData(lists sharepoint.ListNames) map[string][]map[string]any {
	return map[string][]map[string]any{
		lists.Assets: {
			{"Title": "MacBook Pro 14", "AssetTag": "AST-0001", "Category": "Laptop", "AssetStatus": "Assigned", "AssignedToEmail": "jordan.reyes@nimbusworks.example", "AssignedToName": "Jordan Reyes", "Cost": 2399.0, "IsDeleted": false},
			{"Title": "Conference Room Display", "AssetTag": "AST-0002", "Category": "AV", "AssetStatus": "Available", "Cost": 1250.0, "IsDeleted": false},
		},
		lists.Payments: {
			{"Title": "PAY-2026-001", "PayeeEmail": "vendor@officeworld.example", "PayeeName": "Office World Ltd", "Amount": 430.50, "Currency": "USD", "Description": "Stationery order", "PaymentStatus": "Pending", "IsDeleted": false},
		},
		lists.Employees: {
			{"Title": "EMP-0042", "FirstName": "Jordan", "LastName": "Reyes", "WorkEmail": "jordan.reyes@nimbusworks.example", "JobTitle": "Software Engineer", "IsActive": true, "IsDeleted": false},
		},
		lists.Leaves: {
			{"Title": "LR-2026-017", "RequesterEmail": "jordan.reyes@nimbusworks.example", "RequesterName": "Jordan Reyes", "LeaveType": "Annual", "DaysRequested": 5.0, "LeaveStatus": "Pending", "CurrentStep": 1.0, "IsDeleted": false},
		},
		lists.KRAs: {
			{"Title": "Customer Satisfaction", "Description": "Keep customers happy and renewing", "OwnerEmail": "dana.osei@nimbusworks.example", "Division": "Sales", "Weight": 30.0, "IsDeleted": false},
		},
		lists.KPIs: {
			{"Title": "NPS Score", "OwnerEmail": "dana.osei@nimbusworks.example", "TargetValue": 60.0, "ActualValue": 48.0, "Unit": "points", "IsDeleted": false},
		},
		lists.Objectives: {
			{"Title": "Launch self-service portal", "OwnerEmail": "dana.osei@nimbusworks.example", "Progress": 40.0, "IsDeleted": false},
		},
		lists.Projects: {
			{"Title": "Portal Phase 1", "OwnerEmail": "jordan.reyes@nimbusworks.example", "ProjectStatus": "InProgress", "Progress": 55.0, "Budget": 120000.0, "IsDeleted": false},
		},
		lists.Tasks: {
			{"Title": "Build login flow", "AssigneeEmail": "jordan.reyes@nimbusworks.example", "TaskStatus": "InProgress", "Priority": "High", "Progress": 70.0, "IsDeleted": false},
		},
		lists.Risks: {
			{"Title": "Vendor API deprecation", "OwnerEmail": "jordan.reyes@nimbusworks.example", "Likelihood": 2.0, "Impact": 4.0, "Mitigation": "Pin API version, track changelog", "RiskStatus": "InProgress", "IsDeleted": false},
		},
		lists.Events: {
			{"Title": "All Hands", "EventDate": "2026-09-05T15:00:00Z", "EndDate": "2026-09-05T16:00:00Z", "AllDayEvent": false, "Location": "Auditorium", "OrganizerEmail": "dana.osei@nimbusworks.example", "Category": "Company", "IsDeleted": false},
		},
	}
}
