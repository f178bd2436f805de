package config

import (
	"fmt"
	"sort"
)

// 规则集名称，对应三个递进版本
const (
	// RulesetV1 只有移动和反弹
	RulesetV1 = "v1"
	// RulesetV2 加入碰撞和游戏结束画面
	RulesetV2 = "v2"
	// RulesetV3 加入档位（尺寸/速度）、追踪和朝向
	RulesetV3 = "v3"
)

// Rules 规则集特性开关
type Rules struct {
	Collision bool // 碰撞后进入游戏结束
	Stages    bool // 炸弹随时间变大、加速
	Homing    bool // 远距离时追踪玩家
	Facing    bool // 玩家朝向随移动方向变化
}

var rulesets = map[string]Rules{
	RulesetV1: {},
	RulesetV2: {Collision: true},
	RulesetV3: {Collision: true, Stages: true, Homing: true, Facing: true},
}

// RulesFor 按名称查找规则集
func RulesFor(name string) (Rules, error) {
	rules, ok := rulesets[name]
	if !ok {
		return Rules{}, fmt.Errorf("unknown ruleset %q (available: %v)", name, RulesetNames())
	}
	return rules, nil
}

// RulesetNames 返回所有规则集名称（已排序）
func RulesetNames() []string {
	names := make([]string, 0, len(rulesets))
	for name := range rulesets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
