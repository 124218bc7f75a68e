package pacman

import "testing"

func TestClassifyDependencyConflict(t *testing.T) {
	stderr := `resolving dependencies...
looking for conflicting packages...
error: failed to prepare transaction (could not satisfy dependencies)
:: installing gst-plugins-base-libs (1.26.10-3) breaks dependency 'gst-plugins-base-libs=1.26.10-1' required by gst-plugins-bad-libs`

	detail := Classify(stderr)
	if detail == nil {
		t.Fatal("expected a Detail, got nil")
	}

	if detail.Kind != DetailDependencyConflict {
		t.Errorf("kind = %d, want DetailDependencyConflict", detail.Kind)
	}
	if len(detail.Packages) != 2 {
		t.Errorf("expected 2 affected packages, got %d: %v", len(detail.Packages), detail.Packages)
	}
	if detail.Suggestion == "" {
		t.Error("expected a non-empty suggestion")
	}
}

func TestClassifyPackageConflict(t *testing.T) {
	detail := Classify(":: python-pip and python-pipx are in conflict")

	if detail == nil {
		t.Fatal("expected a Detail, got nil")
	}
	if detail.Kind != DetailDependencyConflict {
		t.Errorf("kind = %d, want DetailDependencyConflict", detail.Kind)
	}
	if len(detail.Packages) != 2 {
		t.Errorf("expected 2 affected packages, got %v", detail.Packages)
	}
}

func TestClassifyTargetNotFound(t *testing.T) {
	stderr := `error: target not found: pkg1
error: target not found: pkg2`

	detail := Classify(stderr)
	if detail == nil {
		t.Fatal("expected a Detail, got nil")
	}

	if detail.Kind != DetailTargetNotFound {
		t.Errorf("kind = %d, want DetailTargetNotFound", detail.Kind)
	}
	if len(detail.Packages) != 2 || detail.Packages[0] != "pkg1" || detail.Packages[1] != "pkg2" {
		t.Errorf("packages = %v, want [pkg1 pkg2]", detail.Packages)
	}
}

func TestClassifyDatabaseLocked(t *testing.T) {
	detail := Classify("error: failed to init transaction (unable to lock database)")

	if detail == nil {
		t.Fatal("expected a Detail, got nil")
	}
	if detail.Kind != DetailDatabaseLocked {
		t.Errorf("kind = %d, want DetailDatabaseLocked", detail.Kind)
	}
}

func TestClassifyUnknown(t *testing.T) {
	if detail := Classify("error: something completely different"); detail != nil {
		t.Errorf("expected nil for unrecognized stderr, got %+v", detail)
	}
}

func TestClassifyEmpty(t *testing.T) {
	if detail := Classify(""); detail != nil {
		t.Errorf("expected nil for empty stderr, got %+v", detail)
	}
}
