package dashboard

import (
	"time"

	"promohub/internal/core/port"
)

// dateFormat is how date fields appear in drafts; the forms round-trip
// RFC3339 text.
const dateFormat = time.RFC3339

// diffCampaign builds a patch from the fields that changed between the
// snapshot taken at edit time and the submitted draft. Unchanged fields
// stay absent, so the server leaves them alone. Unparseable date text is
// reported as a ValidationError before anything is sent.
func diffCampaign(snap, draft CampaignDraft) (port.CampaignPatch, error) {
	var patch port.CampaignPatch
	if draft.Title != snap.Title {
		v := draft.Title
		patch.Title = &v
	}
	if draft.Description != snap.Description {
		v := draft.Description
		patch.Description = &v
	}
	if draft.Budget != snap.Budget {
		v := draft.Budget
		patch.Budget = &v
	}
	if draft.StartDate != snap.StartDate {
		t, err := time.Parse(dateFormat, draft.StartDate)
		if err != nil {
			return port.CampaignPatch{}, &port.ValidationError{Field: "startDate", Message: "is not a valid date"}
		}
		patch.StartDate = &t
	}
	if draft.EndDate != snap.EndDate {
		t, err := time.Parse(dateFormat, draft.EndDate)
		if err != nil {
			return port.CampaignPatch{}, &port.ValidationError{Field: "endDate", Message: "is not a valid date"}
		}
		patch.EndDate = &t
	}
	return patch, nil
}

// diffInfluencer mirrors diffCampaign for the roster. Rate text is passed
// through as typed; the service normalizes and validates it.
func diffInfluencer(snap, draft InfluencerDraft) port.InfluencerPatch {
	var patch port.InfluencerPatch
	if draft.Name != snap.Name {
		v := draft.Name
		patch.Name = &v
	}
	if draft.FollowerCount != snap.FollowerCount {
		v := draft.FollowerCount
		patch.FollowerCount = &v
	}
	if draft.EngagementRate != snap.EngagementRate {
		v := draft.EngagementRate
		patch.EngagementRate = &v
	}
	return patch
}
