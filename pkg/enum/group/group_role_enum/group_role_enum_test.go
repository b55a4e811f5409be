package group_role_enum

import "testing"

func TestRoleOrder(t *testing.T) {
	// OWNER > ADMIN > MODERATOR > MEMBER 的全序关系
	order := []int8{MEMBER, MODERATOR, ADMIN, OWNER}
	for i := 1; i < len(order); i++ {
		if !Outranks(order[i], order[i-1]) {
			t.Errorf("Outranks(%d, %d) = false", order[i], order[i-1])
		}
		if Outranks(order[i-1], order[i]) {
			t.Errorf("Outranks(%d, %d) = true", order[i-1], order[i])
		}
	}
	// 同级不构成 Outranks
	if Outranks(ADMIN, ADMIN) {
		t.Errorf("Outranks(ADMIN, ADMIN) = true")
	}
	if !AtLeast(ADMIN, ADMIN) || !AtLeast(OWNER, MODERATOR) || AtLeast(MEMBER, MODERATOR) {
		t.Errorf("AtLeast misbehaves")
	}
}

func TestValid(t *testing.T) {
	for _, role := range []int8{MEMBER, MODERATOR, ADMIN, OWNER} {
		if !Valid(role) {
			t.Errorf("Valid(%d) = false", role)
		}
	}
	for _, role := range []int8{0, 5, -1} {
		if Valid(role) {
			t.Errorf("Valid(%d) = true", role)
		}
	}
}
