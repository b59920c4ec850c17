package domain

import "strings"

// The batch endpoint replaces entities wholesale, so every update entry must
// be a complete entity. Build*Update functions start from the last-known
// server snapshot, apply clears, then explicit values, and return the full
// replacement. A partial update never regresses a field to an empty value
// unless the caller cleared it explicitly.

// BuildTaskUpdate merges patch into snapshot and returns the complete
// replacement entity, stamped with id and a project (falling back to the
// snapshot's project, then to the inbox).
func BuildTaskUpdate(snapshot Task, patch TaskPatch, id, projectID string) Task {
	out := snapshot
	out.Tags = cloneStrings(snapshot.Tags)
	out.Reminders = cloneStrings(snapshot.Reminders)
	out.Items = append([]CheckItem(nil), snapshot.Items...)

	for _, field := range patch.Clear {
		clearTaskField(&out, field)
	}

	if patch.Title != "" {
		out.Title = patch.Title
	}
	if patch.Content != "" {
		out.Content = patch.Content
	}
	if patch.Desc != "" {
		out.Desc = patch.Desc
	}
	if patch.Priority != nil {
		out.Priority = *patch.Priority
	}
	if patch.Status != nil {
		out.Status = *patch.Status
	}
	if patch.StartDate != "" {
		out.StartDate = strptr(patch.StartDate)
	}
	if patch.DueDate != "" {
		out.DueDate = strptr(patch.DueDate)
	}
	if patch.TimeZone != "" {
		out.TimeZone = patch.TimeZone
	}
	if patch.IsAllDay != nil {
		out.IsAllDay = *patch.IsAllDay
	}
	if patch.RepeatFlag != "" {
		out.RepeatFlag = patch.RepeatFlag
	}
	if patch.Reminders != "" {
		out.Reminders = SplitList(patch.Reminders)
	}

	out.Tags = mergeTags(out.Tags, patch.AddTags, patch.RemoveTags)

	if patch.Items != nil {
		out.Items = buildCheckItems(patch.Items)
	}

	out.ID = id
	switch {
	case patch.ProjectID != "":
		out.ProjectID = patch.ProjectID
	case out.ProjectID == "":
		out.ProjectID = InboxProject
	}
	return out
}

// BuildTaskCreate turns a patch into a new task entity.
func BuildTaskCreate(patch TaskPatch) Task {
	return BuildTaskUpdate(Task{}, patch, "", patch.ProjectID)
}

func clearTaskField(t *Task, field string) {
	switch field {
	case "title":
		t.Title = ""
	case "content":
		t.Content = ""
	case "desc":
		t.Desc = ""
	case "priority":
		t.Priority = PriorityNone
	case "startDate":
		t.StartDate = nil
	case "dueDate":
		t.DueDate = nil
	case "timeZone":
		t.TimeZone = ""
	case "repeatFlag":
		t.RepeatFlag = ""
	case "reminders":
		t.Reminders = []string{}
	case "tags":
		t.Tags = []string{}
	case "items":
		t.Items = nil
	}
}

// mergeTags computes (current ∖ remove) ∪ add, deduplicated, keeping the
// relative order of retained entries followed by added entries in caller
// order.
func mergeTags(current, add, remove []string) []string {
	if len(add) == 0 && len(remove) == 0 {
		return current
	}
	removed := make(map[string]bool, len(remove))
	for _, tag := range remove {
		removed[tag] = true
	}
	seen := make(map[string]bool, len(current)+len(add))
	result := make([]string, 0, len(current)+len(add))
	for _, tag := range current {
		if removed[tag] || seen[tag] {
			continue
		}
		seen[tag] = true
		result = append(result, tag)
	}
	for _, tag := range add {
		if seen[tag] {
			continue
		}
		seen[tag] = true
		result = append(result, tag)
	}
	return result
}

// buildCheckItems rebuilds the checklist from patches, skipping absent fields
// per item and dropping items with no usable content.
func buildCheckItems(patches []CheckItemPatch) []CheckItem {
	items := make([]CheckItem, 0, len(patches))
	for _, p := range patches {
		if p.Title == "" && p.Status == nil {
			continue
		}
		item := CheckItem{ID: p.ID, Title: p.Title}
		if p.Status != nil {
			item.Status = *p.Status
		}
		items = append(items, item)
	}
	return items
}

// SplitList parses a comma-separated textual list, trimming whitespace and
// discarding empty segments.
func SplitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// BuildProjectUpdate merges patch into snapshot and stamps id.
func BuildProjectUpdate(snapshot Project, patch ProjectPatch, id string) Project {
	out := snapshot
	for _, field := range patch.Clear {
		switch field {
		case "color":
			out.Color = ""
		case "groupId":
			out.GroupID = ""
		}
	}
	if patch.Name != "" {
		out.Name = patch.Name
	}
	if patch.Color != "" {
		out.Color = patch.Color
	}
	if patch.ViewMode != "" {
		out.ViewMode = patch.ViewMode
	}
	if patch.Kind != "" {
		out.Kind = patch.Kind
	}
	if patch.GroupID != "" {
		out.GroupID = patch.GroupID
	}
	out.ID = id
	return out
}

// BuildTagUpdate merges patch into snapshot. The tag keeps its Name; renames
// go through the dedicated rename endpoint, not the batch surface.
func BuildTagUpdate(snapshot Tag, patch TagPatch) Tag {
	out := snapshot
	for _, field := range patch.Clear {
		switch field {
		case "color":
			out.Color = ""
		case "parent":
			out.Parent = ""
		}
	}
	if patch.Label != "" {
		out.Label = patch.Label
	}
	if patch.Color != "" {
		out.Color = patch.Color
	}
	if patch.Parent != "" {
		out.Parent = patch.Parent
	}
	return out
}

// BuildHabitUpdate merges patch into snapshot and stamps id.
func BuildHabitUpdate(snapshot Habit, patch HabitPatch, id string) Habit {
	out := snapshot
	out.Reminders = cloneStrings(snapshot.Reminders)
	for _, field := range patch.Clear {
		switch field {
		case "encouragement":
			out.Encouragement = ""
		case "unit":
			out.Unit = ""
		case "reminders":
			out.Reminders = []string{}
		}
	}
	if patch.Name != "" {
		out.Name = patch.Name
	}
	if patch.Color != "" {
		out.Color = patch.Color
	}
	if patch.IconRes != "" {
		out.IconRes = patch.IconRes
	}
	if patch.Goal != nil {
		out.Goal = *patch.Goal
	}
	if patch.Step != nil {
		out.Step = *patch.Step
	}
	if patch.Unit != "" {
		out.Unit = patch.Unit
	}
	if patch.Encouragement != "" {
		out.Encouragement = patch.Encouragement
	}
	out.ID = id
	return out
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}

func strptr(s string) *string {
	return &s
}
