package dataset

import "github.com/pavelanni/scorecard/internal/model"

// ScoreCardV1 returns the v1 score card: Scratch through Python basics,
// with per-record score composition. Each call builds fresh values.
func ScoreCardV1() model.Dataset {
	return model.Dataset{
		Version: model.SchemaV1,
		Student: model.StudentInfo{
			Version:          model.SchemaV1,
			Name:             "张三",
			Age:              12,
			ClassNumber:      "2024001",
			ProgrammingLevel: model.LevelScratch,
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
				ScoreComposition: &model.ScoreComposition{
					MultipleChoice: model.CompositionPart{Count: 15, Score: 14, Total: 15},
					MultipleSelect: model.CompositionPart{Count: 15, Score: 14.5, Total: 15},
					TrueFalse:      model.CompositionPart{Count: 10, Score: 9, Total: 10},
					Programming:    model.CompositionPart{Count: 4, Score: 57.5, Total: 60},
				},
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
				ScoreComposition: &model.ScoreComposition{
					MultipleChoice: model.CompositionPart{Count: 15, Score: 13.5, Total: 15},
					MultipleSelect: model.CompositionPart{Count: 15, Score: 14, Total: 15},
					TrueFalse:      model.CompositionPart{Count: 10, Score: 8.5, Total: 10},
					Programming:    model.CompositionPart{Count: 4, Score: 56, Total: 60},
				},
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
				ScoreComposition: &model.ScoreComposition{
					MultipleChoice: model.CompositionPart{Count: 15, Score: 13, Total: 15},
					MultipleSelect: model.CompositionPart{Count: 15, Score: 13.5, Total: 15},
					TrueFalse:      model.CompositionPart{Count: 10, Score: 8, Total: 10},
					Programming:    model.CompositionPart{Count: 4, Score: 53.5, Total: 60},
				},
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
				ScoreComposition: &model.ScoreComposition{
					MultipleChoice: model.CompositionPart{Count: 15, Score: 12.5, Total: 15},
					MultipleSelect: model.CompositionPart{Count: 15, Score: 13, Total: 15},
					TrueFalse:      model.CompositionPart{Count: 10, Score: 7.5, Total: 10},
					Programming:    model.CompositionPart{Count: 4, Score: 52, Total: 60},
				},
				Skills: []model.SkillScore{
					{Name: "语法基础", Score: 80},
					{Name: "数据类型", Score: 85},
					{Name: "控制流", Score: 88},
					{Name: "函数基础", Score: 87},
				},
			},
		},
		KnowledgeMastery: &model.KnowledgeMastery{
			Labels:        []string{"角色设计", "事件处理", "运动控制", "条件判断", "循环结构", "变量使用", "函数调用", "逻辑推理"},
			MasteryLevels: []float64{90, 95, 98, 97, 90, 95, 92, 93},
		},
		KnowledgeTrend: lessonTrend(),
	}
}

// lessonTrend is shared by both score cards.
func lessonTrend() *model.KnowledgeTrend {
	return &model.KnowledgeTrend{
		Labels: []string{"第1-10课", "第11-20课", "第21-30课", "第31-40课", "第41-50课"},
		Skills: []model.SkillSeries{
			{Name: "基础语法", Data: []float64{95, 92, 88, 85, 90}},
			{Name: "逻辑思维", Data: []float64{92, 94, 89, 87, 93}},
			{Name: "算法设计", Data: []float64{88, 90, 86, 84, 91}},
			{Name: "项目实践", Data: []float64{85, 88, 92, 87, 89}},
		},
	}
}
