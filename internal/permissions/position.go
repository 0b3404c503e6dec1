package permissions

// Position is a staff title. Positions are independent of role.
type Position string

const (
	PositionOwner            Position = "대표"
	PositionDirector         Position = "센터장"
	PositionTeamLead         Position = "팀장"
	PositionViceTeamLead     Position = "부팀장"
	PositionManager          Position = "매니저"
	PositionReceptionManager Position = "리셉션 매니저"
	PositionTrainer          Position = "트레이너"
	PositionPro              Position = "프로"
	PositionReceptionStaff   Position = "리셉션 직원"
	PositionIntern           Position = "인턴"
)

// PositionInfo is the static metadata attached to a position.
type PositionInfo struct {
	Level         int  `json:"level"`
	CanManageTeam bool `json:"can_manage_team"`
}

var positionTable = map[Position]PositionInfo{
	PositionOwner:            {Level: 6, CanManageTeam: true},
	PositionDirector:         {Level: 6, CanManageTeam: true},
	PositionTeamLead:         {Level: 5, CanManageTeam: true},
	PositionViceTeamLead:     {Level: 4, CanManageTeam: true},
	PositionManager:          {Level: 4, CanManageTeam: true},
	PositionReceptionManager: {Level: 4, CanManageTeam: true},
	PositionTrainer:          {Level: 3},
	PositionPro:              {Level: 3},
	PositionReceptionStaff:   {Level: 2},
	PositionIntern:           {Level: 1},
}

// managerTier are the positions that satisfy the "manager" elevation level.
var managerTier = map[Position]struct{}{
	PositionTeamLead:         {},
	PositionViceTeamLead:     {},
	PositionManager:          {},
	PositionReceptionManager: {},
}

// LookupPosition returns the static info for p.
func LookupPosition(p Position) (PositionInfo, bool) {
	info, ok := positionTable[p]
	return info, ok
}

// Level is 0 for unknown or empty positions.
func (p Position) Level() int {
	return positionTable[p].Level
}

func (p Position) CanManageTeam() bool {
	return positionTable[p].CanManageTeam
}

// ElevationLevel is a tier above plain role permissions.
type ElevationLevel string

const (
	ElevationTeamLead ElevationLevel = "team_lead"
	ElevationManager  ElevationLevel = "manager"
	ElevationAdmin    ElevationLevel = "admin"
)

// HasElevatedPermission reports whether role/position reach the required tier.
// The admin role reaches every tier.
func HasElevatedPermission(role Role, position Position, required ElevationLevel) bool {
	if role == RoleAdmin {
		return true
	}
	switch required {
	case ElevationAdmin:
		return false
	case ElevationManager:
		_, ok := managerTier[position]
		return ok
	case ElevationTeamLead:
		return position.CanManageTeam()
	default:
		return false
	}
}
