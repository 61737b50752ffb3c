package sniffkit

import (
	"bytes"
	"testing"
)

func TestSubtypeBelongsToOneCategory(t *testing.T) {
	seen := map[Subtype]Category{}
	for _, sig := range signatures {
		if prev, ok := seen[sig.Subtype]; ok && prev != sig.Category {
			t.Errorf("subtype %s appears under both %s and %s", sig.Subtype, prev, sig.Category)
		}
		seen[sig.Subtype] = sig.Category
	}
}

func TestEveryRegistrySubtypeHasMIMEMapping(t *testing.T) {
	for _, sig := range signatures {
		if _, ok := mimeTypes[sig.Subtype]; !ok {
			t.Errorf("subtype %s has no MIME mapping", sig.Subtype)
		}
	}
}

func TestOLEFallbackOrderIsWordExcelPowerPoint(t *testing.T) {
	// All three legacy Office records carry the identical OLE signature,
	// so registry order decides what an unresolvable OLE file becomes.
	var order []Category
	for _, sig := range signatures {
		if bytes.Equal(sig.Magic, oleMagic) {
			order = append(order, sig.Category)
		}
	}

	want := []Category{CategoryWord, CategoryExcel, CategoryPowerPoint}
	if len(order) != len(want) {
		t.Fatalf("expected %d OLE records, got %d", len(want), len(order))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("OLE record %d: got %s, want %s", i, order[i], want[i])
		}
	}
}

func TestMIMEType(t *testing.T) {
	tests := []struct {
		subtype Subtype
		want    string
	}{
		{SubtypeJPEG, "image/jpeg"},
		{SubtypeDOCX, "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
		{SubtypeDOC, "application/msword"},
		{SubtypePPTX, "application/vnd.openxmlformats-officedocument.presentationml.presentation"},
		{SubtypeCUR, "image/x-icon"},
		{SubtypeTar, "application/x-tar"},
		{"", DefaultMIME},
		{"no-such-subtype", DefaultMIME},
	}

	for _, tt := range tests {
		if got := MIMEType(tt.subtype); got != tt.want {
			t.Errorf("MIMEType(%q) = %q, want %q", tt.subtype, got, tt.want)
		}
	}
}

func TestSignaturesReturnsCopy(t *testing.T) {
	sigs := Signatures()
	if len(sigs) == 0 {
		t.Fatal("empty registry")
	}

	original := sigs[0].Subtype
	sigs[0].Subtype = "tampered"
	if signatures[0].Subtype != original {
		t.Error("mutating the returned slice changed the registry")
	}
}

func TestZipRecordIsFirstArchive(t *testing.T) {
	for _, sig := range signatures {
		if sig.Category != CategoryMixed {
			continue
		}
		if sig.Subtype != SubtypeZIP {
			t.Errorf("first mixed record is %s, want zip", sig.Subtype)
		}
		break
	}
}
