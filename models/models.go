package models

import (
	"encoding/json"
	"time"
)

// SignalLevel is the coarse categorical outcome of evaluating game metrics
// against fixed thresholds.
type SignalLevel string

const (
	SignalGreen  SignalLevel = "green"
	SignalYellow SignalLevel = "yellow"
	SignalRed    SignalLevel = "red"
)

// GameMetrics is a single game session's raw measurement. Immutable after
// creation; accuracy is a 0.0-1.0 fraction, reaction time is milliseconds.
type GameMetrics struct {
	Accuracy        float64 `json:"accuracy" binding:"min=0,max=1"`
	AvgReactionTime float64 `json:"avgReactionTime" binding:"min=0"`
	FalseClicks     int     `json:"falseClicks" binding:"min=0"`
	Retries         int     `json:"retries" binding:"min=0"`
}

// DomainResult is the evaluated outcome for one cognitive/academic domain.
// Consumed directly by the UI and persisted verbatim.
type DomainResult struct {
	Domain   string      `json:"domain"`
	Emoji    string      `json:"emoji"`
	Signal   SignalLevel `json:"signal"`
	Feedback string      `json:"feedback"`
	Metrics  GameMetrics `json:"metrics"`
}

// SkillAssessment aggregates all answers for one named skill.
// Recomputed fresh from the full attempt history on every request.
type SkillAssessment struct {
	SkillName              string  `json:"skillName"`
	ProficiencyLevel       float64 `json:"proficiencyLevel"`
	QuestionsAttempted     int     `json:"questionsAttempted"`
	QuestionsCorrect       int     `json:"questionsCorrect"`
	AverageTimePerQuestion float64 `json:"averageTimePerQuestion"`
	Improvement            float64 `json:"improvement"`
}

// TopicScore is one topic's slice of a SubjectAnalysis.
type TopicScore struct {
	TopicName          string   `json:"topicName"`
	Score              float64  `json:"score"`
	QuestionsAttempted int      `json:"questionsAttempted"`
	TimeSpent          float64  `json:"timeSpent"`
	SkillsAssessed     []string `json:"skillsAssessed"`
}

// SubjectAnalysis aggregates scoring per subject. Every topic in
// TopicBreakdown belongs to exactly one subject.
type SubjectAnalysis struct {
	SubjectName     string       `json:"subjectName"`
	OverallScore    float64      `json:"overallScore"`
	TopicBreakdown  []TopicScore `json:"topicBreakdown"`
	Strengths       []string     `json:"strengths"`
	Weaknesses      []string     `json:"weaknesses"`
	Recommendations []string     `json:"recommendations"`
}

// CompetencyCategory classifies a skill's proficiency band.
type CompetencyCategory string

const (
	CompetencyStrength   CompetencyCategory = "strength"
	CompetencyDeveloping CompetencyCategory = "developing"
	CompetencyWeakness   CompetencyCategory = "weakness"
)

// CompetencyArea is the classification of one SkillAssessment.
type CompetencyArea struct {
	SkillName        string             `json:"skillName"`
	Category         CompetencyCategory `json:"category"`
	ProficiencyLevel float64            `json:"proficiencyLevel"`
	Recommendation   string             `json:"recommendation"`
}

// RiskLevel is the low/moderate/high categorical estimate for a
// developmental-concern category. Explicitly non-diagnostic.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
)

// RiskAssessment is the classifier output for one concern category.
// Score and RiskLevel are always derived from the same constant table.
type RiskAssessment struct {
	RiskLevel      RiskLevel `json:"riskLevel"`
	Confidence     float64   `json:"confidence"`
	Indicators     []string  `json:"indicators"`
	Score          float64   `json:"score"`
	Threshold      float64   `json:"threshold"`
	Recommendation string    `json:"recommendation"`
}

// Question is a question-bank entry the aggregator resolves answers against.
// CorrectAnswers, when present, requires set containment; otherwise
// CorrectAnswer is compared case-insensitively.
type Question struct {
	ID             string   `json:"id" yaml:"id"`
	Subject        string   `json:"subject" yaml:"subject"`
	Topic          string   `json:"topic" yaml:"topic"`
	Text           string   `json:"text" yaml:"text"`
	Skills         []string `json:"skills" yaml:"skills"`
	CorrectAnswer  string   `json:"correctAnswer" yaml:"correct_answer"`
	CorrectAnswers []string `json:"correctAnswers,omitempty" yaml:"correct_answers"`
	MaxMarks       float64  `json:"maxMarks" yaml:"max_marks"`
}

// AttemptAnswer is one answer inside an exam attempt. Answers carries
// multi-valued responses; Answer the scalar case.
type AttemptAnswer struct {
	QuestionID string   `json:"questionId"`
	Answer     string   `json:"answer"`
	Answers    []string `json:"answers,omitempty"`
	TimeSpent  float64  `json:"timeSpent"`
}

// ExamAttempt is one completed attempt supplied by the caller. The
// aggregators treat the attempt list as the full history, oldest first.
type ExamAttempt struct {
	AttemptID   string          `json:"attemptId"`
	StudentName string          `json:"studentName"`
	CompletedAt time.Time       `json:"completedAt"`
	Answers     []AttemptAnswer `json:"answers"`
}

// Mistake describes one recorded error during a game.
type Mistake struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// GameResult is one game's outcome in a game-based analysis request.
// Accuracy here is a 0-100 percentage, matching the frontend contract.
type GameResult struct {
	Game         string    `json:"game" binding:"required"`
	Score        float64   `json:"score" binding:"min=0,max=100"`
	Accuracy     float64   `json:"accuracy" binding:"min=0,max=100"`
	ReactionTime float64   `json:"reactionTime" binding:"min=0"`
	Attempts     int       `json:"attempts" binding:"min=0"`
	TimeSpent    float64   `json:"timeSpent" binding:"min=0"`
	Mistakes     []Mistake `json:"mistakes"`
}

// GameAnswer references a bank question by subject/topic/text.
type GameAnswer struct {
	Subject  string `json:"subject"`
	Topic    string `json:"topic"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// GameAnalysisRequest is the game-based analysis input contract.
type GameAnalysisRequest struct {
	StudentName string       `json:"studentName" binding:"required"`
	Age         int          `json:"age" binding:"required,min=3,max=18"`
	Grade       string       `json:"grade" binding:"required"`
	GameResults []GameResult `json:"gameResults" binding:"required,min=1,dive"`
	Answers     []GameAnswer `json:"answers,omitempty"`
}

// AssessmentParameters are the five 1-5 teacher ratings per subject.
type AssessmentParameters struct {
	ApplicationBasedQuestions int `json:"applicationBasedQuestions" binding:"required,min=1,max=5"`
	TheoryQuestions           int `json:"theoryQuestions" binding:"required,min=1,max=5"`
	EffortPutIn               int `json:"effortPutIn" binding:"required,min=1,max=5"`
	ProblemSolvingCaseStudy   int `json:"problemSolvingCaseStudy" binding:"required,min=1,max=5"`
	RecallQuestions           int `json:"recallQuestions" binding:"required,min=1,max=5"`
}

// SubjectAssessmentInput is one subject's marks in an advanced request.
// TotalMarks is fixed at 100 by the strict schema.
type SubjectAssessmentInput struct {
	SubjectID            string               `json:"subjectId"`
	SubjectName          string               `json:"subjectName" binding:"required"`
	TotalMarks           float64              `json:"totalMarks" binding:"required,eq=100"`
	ObtainedMarks        float64              `json:"obtainedMarks" binding:"min=0,max=100"`
	AssessmentParameters AssessmentParameters `json:"assessmentParameters" binding:"required"`
}

// AdvancedAnalysisRequest is the academic (grade 6+) input contract.
type AdvancedAnalysisRequest struct {
	StudentID          string                   `json:"studentId"`
	StudentName        string                   `json:"studentName" binding:"required"`
	Grade              string                   `json:"grade" binding:"required,oneof=6 7 8 9 10 11 12"`
	AcademicYear       string                   `json:"academicYear"`
	SubjectAssessments []SubjectAssessmentInput `json:"subjectAssessments" binding:"required,min=1,dive"`
}

// DevelopmentalAssessment holds the five fixed early-childhood domains.
// Question counts are part of the contract: attention 5, language 5,
// cognitive 5, motor 8, social 11, each scored 1-5.
type DevelopmentalAssessment struct {
	Attention []int `json:"attention" binding:"required,len=5,dive,min=1,max=5"`
	Language  []int `json:"language" binding:"required,len=5,dive,min=1,max=5"`
	Cognitive []int `json:"cognitive" binding:"required,len=5,dive,min=1,max=5"`
	Motor     []int `json:"motor" binding:"required,len=8,dive,min=1,max=5"`
	Social    []int `json:"social" binding:"required,len=11,dive,min=1,max=5"`
}

// EarlyChildhoodRequest is the ages 3-7 questionnaire input contract.
type EarlyChildhoodRequest struct {
	StudentName             string                  `json:"studentName" binding:"required"`
	Age                     int                     `json:"age" binding:"required,min=3,max=7"`
	Grade                   string                  `json:"grade" binding:"required,oneof=LKG UKG 1 2"`
	TeacherName             string                  `json:"teacherName" binding:"required"`
	AssessmentDate          string                  `json:"assessmentDate" binding:"required"`
	DevelopmentalAssessment DevelopmentalAssessment `json:"developmentalAssessment" binding:"required"`
}

// SignalRequest is the client-side signal evaluation input.
type SignalRequest struct {
	StudentName string      `json:"studentName"`
	Domain      string      `json:"domain" binding:"required"`
	Emoji       string      `json:"emoji"`
	Metrics     GameMetrics `json:"metrics" binding:"required"`
}

// SkillAggregationRequest feeds the aggregator directly.
type SkillAggregationRequest struct {
	Attempts         []ExamAttempt `json:"attempts" binding:"required"`
	UnresolvedPolicy string        `json:"unresolvedPolicy" binding:"omitempty,oneof=skip fail"`
}

// SkillAggregationResponse bundles the aggregator outputs.
type SkillAggregationResponse struct {
	Skills          []SkillAssessment `json:"skills"`
	Subjects        []SubjectAnalysis `json:"subjects"`
	CompetencyAreas []CompetencyArea  `json:"competencyAreas"`
}

// Metadata wraps every composed analysis response. Downstream UI code
// pattern-matches on these exact keys.
type Metadata struct {
	AnalysisDate    string  `json:"analysis_date"`
	ModelUsed       string  `json:"model_used"`
	StudentName     string  `json:"student_name"`
	AnalysisType    string  `json:"analysis_type"`
	ConfidenceScore float64 `json:"confidence_score"`
}

// Skillsets are the estimated per-dimension 0-100 scores in a game-based
// analysis.
type Skillsets struct {
	Cognitive       float64 `json:"cognitive"`
	Attention       float64 `json:"attention"`
	Memory          float64 `json:"memory"`
	ProblemSolving  float64 `json:"problemSolving"`
	ProcessingSpeed float64 `json:"processingSpeed"`
}

// GameAnalysisResponse is the fixed game-based output shape.
type GameAnalysisResponse struct {
	OverallAssessment string            `json:"overallAssessment"`
	Strengths         []string          `json:"strengths"`
	Weaknesses        []string          `json:"weaknesses"`
	Skillsets         Skillsets         `json:"skillsets"`
	SkillAssessments  []SkillAssessment `json:"skillAssessments,omitempty"`
	SubjectAnalyses   []SubjectAnalysis `json:"subjectAnalyses,omitempty"`
	CompetencyAreas   []CompetencyArea  `json:"competencyAreas,omitempty"`
	Recommendations   []string          `json:"recommendations"`
	Metadata          Metadata          `json:"metadata"`
}

// StudentInfo identifies the student inside composed responses.
type StudentInfo struct {
	StudentID      string `json:"studentId,omitempty"`
	StudentName    string `json:"studentName"`
	Age            int    `json:"age,omitempty"`
	Grade          string `json:"grade"`
	AcademicYear   string `json:"academicYear,omitempty"`
	TeacherName    string `json:"teacherName,omitempty"`
	AssessmentDate string `json:"assessmentDate,omitempty"`
}

// SubjectReport is one subject's slice of an advanced analysis.
type SubjectReport struct {
	SubjectName   string   `json:"subjectName"`
	ObtainedMarks float64  `json:"obtainedMarks"`
	TotalMarks    float64  `json:"totalMarks"`
	Percentage    float64  `json:"percentage"`
	LetterGrade   string   `json:"letterGrade"`
	Strengths     []string `json:"strengths"`
	FocusAreas    []string `json:"focusAreas"`
}

// StudyPlan is the action plan inside overallPerformance.
type StudyPlan struct {
	ImmediateActions []string `json:"immediateActions"`
	ShortTermGoals   []string `json:"shortTermGoals"`
	LongTermStrategy []string `json:"longTermStrategy"`
}

// OverallPerformance summarizes an advanced analysis.
type OverallPerformance struct {
	OverallPercentage float64   `json:"overallPercentage"`
	PerformanceLevel  string    `json:"performanceLevel"`
	Strengths         []string  `json:"strengths"`
	Weaknesses        []string  `json:"weaknesses"`
	StudyPlan         StudyPlan `json:"studyPlan"`
}

// StreamSuitability scores one academic stream for the student.
type StreamSuitability struct {
	Stream           string  `json:"stream"`
	SuitabilityScore float64 `json:"suitabilityScore"`
}

// CareerGuidance is the stream/career block of an advanced analysis.
type CareerGuidance struct {
	SuitableStreams []StreamSuitability `json:"suitableStreams"`
	EmergingOptions []string            `json:"emergingOptions"`
}

// AdvancedAnalysisResponse is the fixed academic output shape.
type AdvancedAnalysisResponse struct {
	StudentInfo        StudentInfo        `json:"studentInfo"`
	SubjectAnalysis    []SubjectReport    `json:"subjectAnalysis"`
	OverallPerformance OverallPerformance `json:"overallPerformance"`
	CareerGuidance     CareerGuidance     `json:"careerGuidance"`
	Metadata           Metadata           `json:"metadata"`
}

// SectionAverages are the per-domain mean scores of the questionnaire.
type SectionAverages struct {
	Attention float64 `json:"attention"`
	Language  float64 `json:"language"`
	Cognitive float64 `json:"cognitive"`
	Motor     float64 `json:"motor"`
	Social    float64 `json:"social"`
}

// DevelopmentalProfile summarizes an early-childhood assessment.
type DevelopmentalProfile struct {
	SectionAverages         SectionAverages `json:"sectionAverages"`
	OverallAverage          float64         `json:"overallAverage"`
	OverallDevelopmentLevel string          `json:"overallDevelopmentLevel"`
	DevelopmentalAge        float64         `json:"developmentalAge"`
	AreasOfStrength         []string        `json:"areasOfStrength"`
	AreasOfConcern          []string        `json:"areasOfConcern"`
}

// RiskAssessments groups the six fixed concern categories.
type RiskAssessments struct {
	ADHD                   RiskAssessment `json:"adhdRisk"`
	Dyslexia               RiskAssessment `json:"dyslexiaRisk"`
	Dysgraphia             RiskAssessment `json:"dysgraphiaRisk"`
	IntellectualDisability RiskAssessment `json:"intellectualDisabilityRisk"`
	Autism                 RiskAssessment `json:"autismRisk"`
	ApraxiaOfSpeech        RiskAssessment `json:"apraxiaOfSpeechRisk"`
}

// ServiceRecommendation is a conditionally included intervention service.
// Omitted entirely (never null) when its trigger condition is false.
type ServiceRecommendation struct {
	Service   string `json:"service"`
	Reason    string `json:"reason"`
	Frequency string `json:"frequency"`
}

// InterventionPlan is the early-childhood action block.
type InterventionPlan struct {
	RecommendedServices     []ServiceRecommendation `json:"recommendedServices"`
	HomeActivities          []string                `json:"homeActivities"`
	ReassessmentRecommended string                  `json:"reassessmentRecommended"`
}

// EarlyChildhoodResponse is the fixed early-childhood output shape.
type EarlyChildhoodResponse struct {
	StudentInfo          StudentInfo          `json:"studentInfo"`
	DevelopmentalProfile DevelopmentalProfile `json:"developmentalProfile"`
	RiskAssessments      RiskAssessments      `json:"riskAssessments"`
	InterventionPlan     InterventionPlan     `json:"interventionPlan"`
	Metadata             Metadata             `json:"metadata"`
}

// AnalysisReport is a stored analysis: the raw input and the composed
// response, exactly as served.
type AnalysisReport struct {
	ID           string          `json:"id"`
	StudentName  string          `json:"student_name"`
	AnalysisType string          `json:"analysis_type"`
	ModelUsed    string          `json:"model_used"`
	Fallback     bool            `json:"fallback"`
	Input        json.RawMessage `json:"input"`
	Report       json.RawMessage `json:"report"`
	CreatedAt    time.Time       `json:"created_at"`
}
