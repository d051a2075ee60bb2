package constants

import "testing"

func TestRoleAllows(t *testing.T) {
	cases := []struct {
		name     string
		required string
		actual   string
		want     bool
	}{
		{"student mengakses route student", RoleStudent, RoleStudent, true},
		{"admin mengakses route student", RoleStudent, RoleAdmin, true},
		{"admin mengakses route admin", RoleAdmin, RoleAdmin, true},
		{"student mengakses route admin", RoleAdmin, RoleStudent, false},
		{"role tak dikenal ditolak", RoleStudent, "guest", false},
		{"role kosong ditolak", RoleAdmin, "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := RoleAllows(tc.required, tc.actual); got != tc.want {
				t.Fatalf("RoleAllows(%q, %q) = %v, want %v", tc.required, tc.actual, got, tc.want)
			}
		})
	}
}

func TestIsValidRole(t *testing.T) {
	if !IsValidRole(RoleStudent) || !IsValidRole(RoleAdmin) {
		t.Fatalf("role bawaan harus valid")
	}
	if IsValidRole("superuser") {
		t.Fatalf("role di luar daftar harus ditolak")
	}
}
