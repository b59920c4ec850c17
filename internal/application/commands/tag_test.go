package commands

import (
	"context"
	"errors"
	"testing"

	"tickbridge/internal/application"
	"tickbridge/internal/domain"
)

func TestUpdateTagCommand(t *testing.T) {
	t.Run("merges onto the existing tag", func(t *testing.T) {
		gw := newFakeGateway()
		gw.tags = []domain.Tag{{Name: "work", Label: "Work", Color: "#ff0000", Parent: "life"}}

		cmd := NewUpdateTagCommand(gw, "work", domain.TagPatch{Color: "#00ff00"})
		result, err := cmd.Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(gw.replacedTags) != 1 {
			t.Fatalf("expected one replacement, got %d", len(gw.replacedTags))
		}
		got := gw.replacedTags[0]
		if got.Color != "#00ff00" {
			t.Errorf("color not updated: %s", got.Color)
		}
		if got.Parent != "life" || got.Label != "Work" {
			t.Errorf("untouched fields lost: %+v", got)
		}
		if result.Tag.Name != "work" {
			t.Errorf("tag name must not change on update: %s", result.Tag.Name)
		}
	})

	t.Run("reports a missing tag", func(t *testing.T) {
		cmd := NewUpdateTagCommand(newFakeGateway(), "ghost", domain.TagPatch{Color: "#fff"})
		_, err := cmd.Execute(context.Background())
		if !errors.Is(err, application.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestRenameTagCommand(t *testing.T) {
	gw := newFakeGateway()
	cmd := NewRenameTagCommand(gw, "work", "job")
	if _, err := cmd.Execute(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(gw.renames) != 1 || gw.renames[0] != [2]string{"work", "job"} {
		t.Errorf("rename not forwarded: %v", gw.renames)
	}

	t.Run("requires both names", func(t *testing.T) {
		cmd := NewRenameTagCommand(gw, "work", "")
		if _, err := cmd.Execute(context.Background()); err == nil {
			t.Fatal("expected a validation error")
		}
	})
}

func TestCreateTagCommand(t *testing.T) {
	gw := newFakeGateway()
	cmd := NewCreateTagCommand(gw, "errands", domain.TagPatch{Color: "#336699"})
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Tag.Name != "errands" || result.Tag.Label != "errands" {
		t.Errorf("name/label not set: %+v", result.Tag)
	}
	if result.Tag.Color != "#336699" {
		t.Errorf("color not applied: %s", result.Tag.Color)
	}
}
