package mapping

import "github.com/nimbusworks/intranet_portal_app/internal/core/domain"

// Strategy planning dictionaries. The entities reference each other via
// lookup columns; the inbound mapper surfaces both the lookup id and the
// display title where the store expanded it. Joins are client-side.

var KRADict = withCommon(
	FieldDef{Domain: "title", External: "Title", Type: Text},
	FieldDef{Domain: "description", External: "Description", Type: Text},
	FieldDef{Domain: "owner_email", External: "OwnerEmail", Type: Text},
	FieldDef{Domain: "division", External: "Division", Type: Text},
	FieldDef{Domain: "weight", External: "Weight", Type: Number},
)

// DecodeKRA projects a raw item field bag into a domain KRA.
func DecodeKRA(id string, fields map[string]any) domain.KRA {
	vals := KRADict.FromExternal(fields)
	return domain.KRA{
		KRAID:            id,
		Title:            Str(vals, "title"),
		Description:      Str(vals, "description"),
		OwnerEmail:       Str(vals, "owner_email"),
		Division:         Str(vals, "division"),
		Weight:           F64(vals, "weight"),
		SoftDeleteFields: decodeSoftDelete(vals),
		AuditFields:      decodeAudit(vals),
	}
}

var KPIDict = withCommon(
	FieldDef{Domain: "title", External: "Title", Type: Text},
	FieldDef{Domain: "kra_id", External: "KraLookupId", Type: LookupID},
	FieldDef{Domain: "kra_title", External: "Kra", Type: Text},
	FieldDef{Domain: "owner_email", External: "OwnerEmail", Type: Text},
	FieldDef{Domain: "target", External: "TargetValue", Type: Number},
	FieldDef{Domain: "actual", External: "ActualValue", Type: Number},
	FieldDef{Domain: "unit", External: "Unit", Type: Text},
	FieldDef{Domain: "due_date", External: "DueDate", Type: Date},
)

// DecodeKPI projects a raw item field bag into a domain KPI.
func DecodeKPI(id string, fields map[string]any) domain.KPI {
	vals := KPIDict.FromExternal(fields)
	return domain.KPI{
		KPIID:            id,
		Title:            Str(vals, "title"),
		KRA:              domain.Ref{ID: Str(vals, "kra_id"), Label: Str(vals, "kra_title")},
		OwnerEmail:       Str(vals, "owner_email"),
		Target:           F64(vals, "target"),
		Actual:           F64(vals, "actual"),
		Unit:             Str(vals, "unit"),
		DueDate:          TimePtr(vals, "due_date"),
		SoftDeleteFields: decodeSoftDelete(vals),
		AuditFields:      decodeAudit(vals),
	}
}

var ObjectiveDict = withCommon(
	FieldDef{Domain: "title", External: "Title", Type: Text},
	FieldDef{Domain: "kra_id", External: "KraLookupId", Type: LookupID},
	FieldDef{Domain: "kra_title", External: "Kra", Type: Text},
	FieldDef{Domain: "owner_email", External: "OwnerEmail", Type: Text},
	FieldDef{Domain: "progress", External: "Progress", Type: Number},
	FieldDef{Domain: "start_date", External: "StartDate", Type: Date},
	FieldDef{Domain: "end_date", External: "EndDate", Type: Date},
)

// DecodeObjective projects a raw item field bag into a domain Objective.
func DecodeObjective(id string, fields map[string]any) domain.Objective {
	vals := ObjectiveDict.FromExternal(fields)
	return domain.Objective{
		ObjectiveID:      id,
		Title:            Str(vals, "title"),
		KRA:              domain.Ref{ID: Str(vals, "kra_id"), Label: Str(vals, "kra_title")},
		OwnerEmail:       Str(vals, "owner_email"),
		Progress:         F64(vals, "progress"),
		StartDate:        TimePtr(vals, "start_date"),
		EndDate:          TimePtr(vals, "end_date"),
		SoftDeleteFields: decodeSoftDelete(vals),
		AuditFields:      decodeAudit(vals),
	}
}

var ProjectDict = withCommon(
	FieldDef{Domain: "title", External: "Title", Type: Text},
	FieldDef{Domain: "objective_id", External: "ObjectiveLookupId", Type: LookupID},
	FieldDef{Domain: "objective_title", External: "Objective", Type: Text},
	FieldDef{Domain: "owner_email", External: "OwnerEmail", Type: Text},
	FieldDef{Domain: "status", External: "ProjectStatus", Type: Text},
	FieldDef{Domain: "progress", External: "Progress", Type: Number},
	FieldDef{Domain: "budget", External: "Budget", Type: Number},
	FieldDef{Domain: "start_date", External: "StartDate", Type: Date},
	FieldDef{Domain: "end_date", External: "EndDate", Type: Date},
)

// DecodeProject projects a raw item field bag into a domain Project.
func DecodeProject(id string, fields map[string]any) domain.Project {
	vals := ProjectDict.FromExternal(fields)
	return domain.Project{
		ProjectID:        id,
		Title:            Str(vals, "title"),
		Objective:        domain.Ref{ID: Str(vals, "objective_id"), Label: Str(vals, "objective_title")},
		OwnerEmail:       Str(vals, "owner_email"),
		Status:           domain.PlanningStatus(Str(vals, "status")),
		Progress:         F64(vals, "progress"),
		Budget:           F64(vals, "budget"),
		StartDate:        TimePtr(vals, "start_date"),
		EndDate:          TimePtr(vals, "end_date"),
		SoftDeleteFields: decodeSoftDelete(vals),
		AuditFields:      decodeAudit(vals),
	}
}

var TaskDict = withCommon(
	FieldDef{Domain: "title", External: "Title", Type: Text},
	FieldDef{Domain: "project_id", External: "ProjectLookupId", Type: LookupID},
	FieldDef{Domain: "project_title", External: "Project", Type: Text},
	FieldDef{Domain: "assignee_email", External: "AssigneeEmail", Type: Text},
	FieldDef{Domain: "status", External: "TaskStatus", Type: Text},
	FieldDef{Domain: "priority", External: "Priority", Type: Text},
	FieldDef{Domain: "progress", External: "Progress", Type: Number},
	FieldDef{Domain: "due_date", External: "DueDate", Type: Date},
)

// DecodeTask projects a raw item field bag into a domain Task.
func DecodeTask(id string, fields map[string]any) domain.Task {
	vals := TaskDict.FromExternal(fields)
	return domain.Task{
		TaskID:           id,
		Title:            Str(vals, "title"),
		Project:          domain.Ref{ID: Str(vals, "project_id"), Label: Str(vals, "project_title")},
		AssigneeEmail:    Str(vals, "assignee_email"),
		Status:           domain.PlanningStatus(Str(vals, "status")),
		Priority:         Str(vals, "priority"),
		Progress:         F64(vals, "progress"),
		DueDate:          TimePtr(vals, "due_date"),
		SoftDeleteFields: decodeSoftDelete(vals),
		AuditFields:      decodeAudit(vals),
	}
}

var RiskDict = withCommon(
	FieldDef{Domain: "title", External: "Title", Type: Text},
	FieldDef{Domain: "project_id", External: "ProjectLookupId", Type: LookupID},
	FieldDef{Domain: "project_title", External: "Project", Type: Text},
	FieldDef{Domain: "owner_email", External: "OwnerEmail", Type: Text},
	FieldDef{Domain: "likelihood", External: "Likelihood", Type: Number},
	FieldDef{Domain: "impact", External: "Impact", Type: Number},
	FieldDef{Domain: "mitigation", External: "Mitigation", Type: Text},
	FieldDef{Domain: "status", External: "RiskStatus", Type: Text},
)

// DecodeRisk projects a raw item field bag into a domain Risk.
func DecodeRisk(id string, fields map[string]any) domain.Risk {
	vals := RiskDict.FromExternal(fields)
	return domain.Risk{
		RiskID:           id,
		Title:            Str(vals, "title"),
		Project:          domain.Ref{ID: Str(vals, "project_id"), Label: Str(vals, "project_title")},
		OwnerEmail:       Str(vals, "owner_email"),
		Likelihood:       IntVal(vals, "likelihood"),
		Impact:           IntVal(vals, "impact"),
		Mitigation:       Str(vals, "mitigation"),
		Status:           domain.PlanningStatus(Str(vals, "status")),
		SoftDeleteFields: decodeSoftDelete(vals),
		AuditFields:      decodeAudit(vals),
	}
}
