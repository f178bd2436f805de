package components

// PlayerComponent 标识玩家实体
type PlayerComponent struct {
	Facing Direction // 当前朝向
}
