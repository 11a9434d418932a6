package model

// DiffActivities builds the shallow field diff recorded on updated history
// entries. Timestamps and identity fields are skipped; the full rollback
// snapshot lives in PreviousState.
func DiffActivities(old, updated *Activity) map[string]FieldChange {
	changes := make(map[string]FieldChange)

	if old.SwimlaneID != updated.SwimlaneID {
		changes["swimlane_id"] = FieldChange{Old: old.SwimlaneID, New: updated.SwimlaneID}
	}
	if old.CampaignID != updated.CampaignID {
		changes["campaign_id"] = FieldChange{Old: old.CampaignID, New: updated.CampaignID}
	}
	if old.Title != updated.Title {
		changes["title"] = FieldChange{Old: old.Title, New: updated.Title}
	}
	if old.Description != updated.Description {
		changes["description"] = FieldChange{Old: old.Description, New: updated.Description}
	}
	if !old.StartDate.Equal(updated.StartDate) {
		changes["start_date"] = FieldChange{Old: old.StartDate, New: updated.StartDate}
	}
	if !old.EndDate.Equal(updated.EndDate) {
		changes["end_date"] = FieldChange{Old: old.EndDate, New: updated.EndDate}
	}
	if old.Status != updated.Status {
		changes["status"] = FieldChange{Old: old.Status, New: updated.Status}
	}
	if old.Cost != updated.Cost {
		changes["cost"] = FieldChange{Old: old.Cost, New: updated.Cost}
	}
	if old.ExpectedSAOs != updated.ExpectedSAOs {
		changes["expected_saos"] = FieldChange{Old: old.ExpectedSAOs, New: updated.ExpectedSAOs}
	}
	if old.ActualSAOs != updated.ActualSAOs {
		changes["actual_saos"] = FieldChange{Old: old.ActualSAOs, New: updated.ActualSAOs}
	}

	return changes
}

// UndoneMarker is the change map stamped on the history record an undo appends.
func UndoneMarker(originalAction string) map[string]FieldChange {
	return map[string]FieldChange{
		"undone": {Old: originalAction, New: "restored"},
	}
}
