package entity

import "testing"

func TestPatientFullName(t *testing.T) {
	tests := []struct {
		name    string
		patient Patient
		want    string
	}{
		{
			"with middle name",
			Patient{FirstName: "Ivan", MiddleName: "Petrovich", LastName: "Sidorov"},
			"Sidorov Petrovich Ivan",
		},
		{
			"without middle name",
			Patient{FirstName: "Anna", LastName: "Karenina"},
			"Karenina Anna",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.patient.FullName(); got != tt.want {
				t.Errorf("FullName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUserRoleIsValid(t *testing.T) {
	for _, r := range []UserRole{RoleAdmin, RoleDoctor, RoleNurse, RoleReceptionist} {
		if !r.IsValid() {
			t.Errorf("expected %s to be valid", r)
		}
	}
	if UserRole("superuser").IsValid() {
		t.Error("expected unknown role to be invalid")
	}
}
