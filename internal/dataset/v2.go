package dataset

import "github.com/pavelanni/scorecard/internal/model"

// ScoreCardV2 returns the v2 score card: five stages through Python
// intermediate, with a free-text grade and level and no score composition.
func ScoreCardV2() model.Dataset {
	return model.Dataset{
		Version: model.SchemaV2,
		Student: model.StudentInfo{
			Version:          model.SchemaV2,
			Name:             "张三",
			Grade:            "六年级（3）班",
			StudentID:        "2024001",
			ProgrammingLevel: "Python 入门",
		},
		Scores: []model.ScoreItem{
			{
				ID:           "1",
				Stage:        1,
				Subject:      "Scratch 基础（第1-10课）",
				Score:        95,
				FullScore:    100,
				TestDate:     "2024-03-15",
				Rank:         model.IntPtr(2),
				ClassAverage: model.FloatPtr(88),
				Comment:      "基础扎实，逻辑清晰",
				Skills: []model.SkillScore{
					{Name: "角色设计", Score: 90},
					{Name: "事件处理", Score: 95},
					{Name: "运动控制", Score: 98},
					{Name: "条件判断", Score: 97},
				},
			},
			{
				ID:           "2",
				Stage:        2,
				Subject:      "Scratch 进阶（第11-20课）",
				Score:        92,
				FullScore:    100,
				TestDate:     "2024-04-20",
				Rank:         model.IntPtr(3),
				ClassAverage: model.FloatPtr(85),
				Comment:      "创意丰富，算法理解良好",
				Skills: []model.SkillScore{
					{Name: "循环结构", Score: 90},
					{Name: "变量使用", Score: 95},
					{Name: "函数调用", Score: 92},
					{Name: "逻辑推理", Score: 93},
				},
			},
			{
				ID:           "3",
				Stage:        3,
				Subject:      "Scratch 项目实战（第21-30课）",
				Score:        88,
				FullScore:    100,
				TestDate:     "2024-05-25",
				Rank:         model.IntPtr(5),
				ClassAverage: model.FloatPtr(82),
				Comment:      "项目完成度高，但细节处理需要加强",
				Skills: []model.SkillScore{
					{Name: "项目规划", Score: 85},
					{Name: "代码组织", Score: 88},
					{Name: "调试能力", Score: 87},
					{Name: "创新思维", Score: 92},
				},
			},
			{
				ID:           "4",
				Stage:        4,
				Subject:      "Python 基础（第31-40课）",
				Score:        85,
				FullScore:    100,
				TestDate:     "2024-06-30",
				Rank:         model.IntPtr(7),
				ClassAverage: model.FloatPtr(80),
				Comment:      "Python 入门表现不错，继续加油",
				Skills: []model.SkillScore{
					{Name: "语法基础", Score: 80},
					{Name: "数据类型", Score: 85},
					{Name: "控制流", Score: 88},
					{Name: "函数基础", Score: 87},
				},
			},
			{
				ID:        "5",
				Stage:     5,
				Subject:   "Python 进阶（第41-50课）",
				Score:     90,
				FullScore: 100,
				TestDate:  "2024-08-10",
				Rank:      model.IntPtr(4),
				Comment:   "列表与字典运用熟练，进步明显",
				Skills: []model.SkillScore{
					{Name: "列表操作", Score: 91},
					{Name: "字典使用", Score: 89},
					{Name: "模块导入", Score: 88},
					{Name: "异常处理", Score: 92},
				},
			},
		},
		KnowledgeMastery: &model.KnowledgeMastery{
			Labels:        []string{"基础语法", "逻辑思维", "算法设计", "项目实践", "调试能力"},
			MasteryLevels: []float64{90, 93, 91, 89, 87},
		},
		KnowledgeTrend: lessonTrend(),
	}
}
