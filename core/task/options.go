package task

// Hosts targets the task at an explicit list of hosts, each optionally in
// user@host[:port] form. The previous host list, if any, is replaced whole.
func Hosts(hosts ...string) Option {
	return HostList(hosts)
}

// HostList is the single-slice form of Hosts. Hosts("a", "b") and
// HostList([]string{"a", "b"}) attach identical metadata.
func HostList(hosts []string) Option {
	return func(t *Task) {
		t.Meta.Hosts = append([]string(nil), hosts...)
	}
}

// Roles targets the task at named host groups, resolved by the execution
// engine. The previous role list, if any, is replaced whole.
func Roles(roles ...string) Option {
	return RoleList(roles)
}

// RoleList is the single-slice form of Roles.
func RoleList(roles []string) Option {
	return func(t *Task) {
		t.Meta.Roles = append([]string(nil), roles...)
	}
}

// EnsureOrder keeps the combined host/role target list in combined order
// instead of deduplicating through an unordered set.
func EnsureOrder() Option {
	return func(t *Task) {
		t.Meta.EnsureOrder = true
		t.Meta.Sorted = false
	}
}

// EnsureOrderSorted is EnsureOrder plus a lexicographic sort of the deduped
// target list.
func EnsureOrderSorted() Option {
	return func(t *Task) {
		t.Meta.EnsureOrder = true
		t.Meta.Sorted = true
	}
}
