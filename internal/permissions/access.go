package permissions

// ModifyContext carries what is known about a record and the actor when
// deciding whether the actor may change it. Empty strings mean unknown;
// AssignedUsers is nil when no assignment list is available.
type ModifyContext struct {
	OwnerID         string
	ActorID         string
	ActorDepartment string
	ItemDepartment  string
	AssignedUsers   []string
}

// ModifyContextFor builds a ModifyContext from an actor and a record's metadata.
func ModifyContextFor(actor Actor, item AccessMetadata) ModifyContext {
	return ModifyContext{
		OwnerID:         item.OwnerID,
		ActorID:         actor.ID,
		ActorDepartment: actor.Department,
		ItemDepartment:  item.Department,
		AssignedUsers:   item.AssignedIDs,
	}
}

// CanModifyData decides write access from the role's data access level.
//
// Department scope falls back to ownership when the record's department is
// unknown; assigned scope falls back to ownership when no assignment list is
// available.
func CanModifyData(role Role, resourceType string, mc ModifyContext) bool {
	switch GetDataAccessLevel(role, resourceType) {
	case AccessAll:
		return true
	case AccessDepartment:
		if mc.ActorDepartment == "" {
			return false
		}
		if role == RoleAdmin {
			return true
		}
		if mc.ItemDepartment != "" {
			return mc.ActorDepartment == mc.ItemDepartment
		}
		return mc.OwnerID != "" && mc.OwnerID == mc.ActorID
	case AccessAssigned:
		if mc.ActorID == "" {
			return false
		}
		if mc.AssignedUsers != nil {
			return contains(mc.AssignedUsers, mc.ActorID)
		}
		return mc.OwnerID == mc.ActorID
	case AccessOwn:
		return mc.ActorID != "" && mc.OwnerID != "" && mc.ActorID == mc.OwnerID
	default:
		return false
	}
}

// FilterDataByPermission keeps the items role may see, preserving order.
// For "all" scope, and for admin at "department" scope, the input slice is
// returned as is.
func FilterDataByPermission[T Governed](items []T, role Role, resourceType, actorID, actorDepartment string) []T {
	level := GetDataAccessLevel(role, resourceType)
	switch level {
	case AccessAll:
		return items
	case AccessDepartment:
		if role == RoleAdmin {
			return items
		}
		if actorDepartment == "" {
			return []T{}
		}
	case AccessAssigned, AccessOwn:
	default:
		return []T{}
	}

	out := make([]T, 0, len(items))
	for _, item := range items {
		if visible(level, item.AccessMetadata(), actorID, actorDepartment) {
			out = append(out, item)
		}
	}
	return out
}

func visible(level DataAccessLevel, md AccessMetadata, actorID, actorDepartment string) bool {
	switch level {
	case AccessDepartment:
		if md.Department != "" {
			return md.Department == actorDepartment
		}
		return md.OwnerID != "" && md.OwnerID == actorID
	case AccessAssigned:
		if md.AssignedIDs != nil {
			return actorID != "" && contains(md.AssignedIDs, actorID)
		}
		return md.OwnerID != "" && md.OwnerID == actorID
	case AccessOwn:
		return md.OwnerID != "" && md.OwnerID == actorID
	}
	return false
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
