// Package ledger 不可变的赛季历史表
//
// 覆盖2010-11至2024-25共15个赛季的联赛结果。编译期常量，
// 启动时校验一次键唯一性与连续覆盖，运行期只读。
package ledger

import (
	"fmt"

	"github.com/fbtracker/v1/pkg/constants"
	"github.com/fbtracker/v1/pkg/types"
)

// seasons 费内巴切2010-11至2024-25赛季的联赛排名
var seasons = [constants.SeasonCount]types.SeasonEntry{
	{SeasonKey: 2010, Rank: 1, Champion: true, Points: 82, Narrative: "🏆 CHAMPIONS! Title won under Aykut Kocaman, finished same point with Trabzonspor (82 pts)"},
	{SeasonKey: 2011, Rank: 2, Champion: false, Points: 68, Narrative: "2nd place finish, 9 points behind champion Galatasaray (77 pts)"},
	{SeasonKey: 2012, Rank: 2, Champion: false, Points: 61, Narrative: "2nd place finish, 10 points behind champion Galatasaray (71 pts)"},
	{SeasonKey: 2013, Rank: 1, Champion: true, Points: 74, Narrative: "🏆 CHAMPIONS! Title won under Ersun Yanal, finished 9 points ahead of Galatasaray (65 pts)"},
	{SeasonKey: 2014, Rank: 2, Champion: false, Points: 74, Narrative: "2nd place finish, 3 points behind champion Galatasaray (77 pts)"},
	{SeasonKey: 2015, Rank: 2, Champion: false, Points: 74, Narrative: "2nd place finish, 5 points behind champion Beşiktaş (79 pts)"},
	{SeasonKey: 2016, Rank: 3, Champion: false, Points: 64, Narrative: "3rd place finish, 13 points behind champion Beşiktaş (77 pts)"},
	{SeasonKey: 2017, Rank: 2, Champion: false, Points: 72, Narrative: "2nd place finish, 3 points behind champion Galatasaray (75 pts)"},
	{SeasonKey: 2018, Rank: 6, Champion: false, Points: 46, Narrative: "6th place finish, 23 points behind champion Galatasaray (69 pts)"},
	{SeasonKey: 2019, Rank: 7, Champion: false, Points: 53, Narrative: "7th place finish, 13 points behind champion Başakşehir (66 pts)"},
	{SeasonKey: 2020, Rank: 3, Champion: false, Points: 82, Narrative: "3rd place finish, tied on points with Galatasaray, 2 points behind champion Beşiktaş (84 pts)"},
	{SeasonKey: 2021, Rank: 2, Champion: false, Points: 73, Narrative: "2nd place finish, 8 points behind champion Trabzonspor (81 pts)"},
	{SeasonKey: 2022, Rank: 2, Champion: false, Points: 80, Narrative: "2nd place finish, 5 points behind champion Galatasaray (85 pts)"},
	{SeasonKey: 2023, Rank: 2, Champion: false, Points: 99, Narrative: "2nd place finish despite a record 99 points, 3 points behind champion Galatasaray (102 pts)"},
	{SeasonKey: 2024, Rank: 2, Champion: false, Points: 84, Narrative: "2nd place finish, 11 points behind champion Galatasaray (95 pts)"},
}

// Lookup 按赛季键查找条目
// 范围外的键返回(nil, false)，对全部uint16输入是全函数
func Lookup(seasonKey uint16) (*types.SeasonEntry, bool) {
	if seasonKey < constants.StartSeason || seasonKey > constants.EndSeason {
		return nil, false
	}
	return &seasons[seasonKey-constants.StartSeason], true
}

// All 返回全部赛季条目（按赛季键升序）
func All() []types.SeasonEntry {
	out := make([]types.SeasonEntry, len(seasons))
	copy(out, seasons[:])
	return out
}

// Count 返回赛季条目数量
func Count() int {
	return len(seasons)
}

// Verify 校验赛季表的内部一致性
//
// 启动时调用一次：检查键唯一、连续且恰好覆盖[StartSeason, EndSeason]，
// 排名从1起。表与代码一起发布，校验失败说明构建已损坏。
func Verify() error {
	expected := constants.StartSeason
	for i, entry := range seasons {
		if entry.SeasonKey != expected {
			return fmt.Errorf("赛季表第%d项键为%d, 期望%d", i, entry.SeasonKey, expected)
		}
		if entry.Rank < 1 {
			return fmt.Errorf("赛季%d排名%d无效", entry.SeasonKey, entry.Rank)
		}
		if entry.Champion && entry.Rank != 1 {
			return fmt.Errorf("赛季%d标记夺冠但排名为%d", entry.SeasonKey, entry.Rank)
		}
		expected++
	}
	if expected != constants.EndSeason+1 {
		return fmt.Errorf("赛季表覆盖不完整, 止于%d", expected-1)
	}
	return nil
}
