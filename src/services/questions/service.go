package questions

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"Backend-Firewatch-115/src/database"
	"Backend-Firewatch-115/src/jobs"
	"Backend-Firewatch-115/src/models"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	templatesCollection *mongo.Collection
	answersCollection   *mongo.Collection
	absencesCollection  *mongo.Collection

	catalogMu sync.RWMutex
	catalog   *Catalog
)

var connectOnce sync.Once

// connect is deferred to first database use so the pure engine (catalog,
// visibility, risk scoring) stays usable without a running MongoDB.
func connect() {
	connectOnce.Do(func() {
		if err := database.ConnectMongoDB(); err != nil {
			log.Fatal("MongoDB connection error:", err)
		}

		templatesCollection = database.GetCollection(database.DatabaseName, "questionTemplates")
		answersCollection = database.GetCollection(database.DatabaseName, "absenceQuestions")
		absencesCollection = database.GetCollection(database.DatabaseName, "absences")
	})
}

// GetCatalog returns the shared immutable catalog, loading it from Mongo on
// first use.
func GetCatalog(ctx context.Context) (*Catalog, error) {
	catalogMu.RLock()
	c := catalog
	catalogMu.RUnlock()
	if c != nil {
		return c, nil
	}
	return ReloadCatalog(ctx)
}

// ReloadCatalog rebuilds the catalog from the questionTemplates collection.
// Called once at startup and again after seeding.
func ReloadCatalog(ctx context.Context) (*Catalog, error) {
	connect()

	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	cursor, err := templatesCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var templates []models.QuestionTemplate
	if err = cursor.All(ctx, &templates); err != nil {
		return nil, err
	}

	c := NewCatalog(templates)

	catalogMu.Lock()
	catalog = c
	catalogMu.Unlock()

	log.Printf("Question catalog loaded: %d templates", c.Size())
	return c, nil
}

// GetQuestionsByCategory returns the root questions of a category in catalog order.
func GetQuestionsByCategory(ctx context.Context, category string) ([]models.QuestionTemplate, error) {
	c, err := GetCatalog(ctx)
	if err != nil {
		return nil, err
	}
	return c.RootQuestionsFor(category), nil
}

// GetQuestionsForAbsence returns the scenario root question set.
func GetQuestionsForAbsence(ctx context.Context, absenceType, reasonCategory string) ([]models.QuestionTemplate, error) {
	c, err := GetCatalog(ctx)
	if err != nil {
		return nil, err
	}
	return c.ScenarioQuestions(absenceType, reasonCategory), nil
}

// GetDependentQuestions returns the questions a parent answer unlocks.
func GetDependentQuestions(ctx context.Context, parentID primitive.ObjectID, answer string) ([]models.QuestionTemplate, error) {
	c, err := GetCatalog(ctx)
	if err != nil {
		return nil, err
	}
	return c.ChildrenOf(parentID, answer), nil
}

// GetReturnToWorkQuestions returns the return-to-work assessment questions.
func GetReturnToWorkQuestions(ctx context.Context) ([]models.QuestionTemplate, error) {
	return GetQuestionsByCategory(ctx, models.CategoryReturnToWork)
}

// GetQuestionFlow returns the scenario questions together with the follow-up
// questions each answer option would unlock, so clients can render the whole
// tree up front.
func GetQuestionFlow(ctx context.Context, absenceType, reasonCategory string) ([]models.QuestionFlowNode, error) {
	c, err := GetCatalog(ctx)
	if err != nil {
		return nil, err
	}

	flow := []models.QuestionFlowNode{}
	for _, q := range c.ScenarioQuestions(absenceType, reasonCategory) {
		node := models.QuestionFlowNode{
			QuestionTemplate:   q,
			DependentQuestions: []models.DependentGroup{},
		}

		if q.QuestionType == models.QuestionSelect || q.QuestionType == models.QuestionBoolean {
			for _, option := range q.Options {
				dependents := c.ChildrenOf(q.ID, option)
				if len(dependents) > 0 {
					node.DependentQuestions = append(node.DependentQuestions, models.DependentGroup{
						TriggerAnswer: option,
						Questions:     dependents,
					})
				}
			}
		}

		flow = append(flow, node)
	}

	return flow, nil
}

// SaveAbsenceAnswers appends a batch of answers to an absence. Question text
// and risk tag are stamped from the catalog at save time; answers referencing
// an unknown template are rejected here so the engine never sees them.
func SaveAbsenceAnswers(ctx context.Context, absenceID primitive.ObjectID, req *models.SaveAnswersRequest) ([]models.AbsenceQuestion, error) {
	connect()

	var absence models.Absence
	err := absencesCollection.FindOne(ctx, bson.M{"_id": absenceID}).Decode(&absence)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("absence not found")
		}
		return nil, err
	}

	answeredBy, err := primitive.ObjectIDFromHex(req.AnsweredByID)
	if err != nil {
		return nil, errors.New("invalid answeredById")
	}

	c, err := GetCatalog(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var saved []models.AbsenceQuestion
	var docs []interface{}

	for _, input := range req.Answers {
		templateID, err := primitive.ObjectIDFromHex(input.QuestionTemplateID)
		if err != nil {
			return nil, errors.New("invalid question template id in answers")
		}
		template, ok := c.Get(templateID)
		if !ok {
			return nil, errors.New("unknown question template id in answers")
		}

		answer := models.AbsenceQuestion{
			ID:                 primitive.NewObjectID(),
			AbsenceID:          absenceID,
			QuestionTemplateID: templateID,
			QuestionText:       template.QuestionText,
			RiskTag:            template.RiskTag,
			Answer:             input.Answer,
			AnsweredByID:       answeredBy,
			AnsweredAt:         now,
		}
		saved = append(saved, answer)
		docs = append(docs, answer)
	}

	if len(docs) > 0 {
		if _, err := answersCollection.InsertMany(ctx, docs); err != nil {
			return nil, err
		}
	}

	return saved, nil
}

// GetAbsenceAnswers returns the full answer history of an absence, ordered by
// answer time ascending (insertion order breaks timestamp ties).
func GetAbsenceAnswers(ctx context.Context, absenceID primitive.ObjectID) ([]models.AbsenceQuestion, error) {
	connect()

	opts := options.Find().SetSort(bson.D{
		{Key: "answeredAt", Value: 1},
		{Key: "_id", Value: 1},
	})
	cursor, err := answersCollection.Find(ctx, bson.M{"absenceId": absenceID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var history []models.AbsenceQuestion
	if err = cursor.All(ctx, &history); err != nil {
		return nil, err
	}

	return history, nil
}

// GetFollowUpQuestions recomputes the follow-up questions the current answer
// history unlocks.
func GetFollowUpQuestions(ctx context.Context, absenceID primitive.ObjectID) ([]models.QuestionTemplate, error) {
	c, err := GetCatalog(ctx)
	if err != nil {
		return nil, err
	}
	history, err := GetAbsenceAnswers(ctx, absenceID)
	if err != nil {
		return nil, err
	}
	return FollowUpQuestions(c, history), nil
}

// GetVisibleQuestions recomputes the full visible question set for a case.
func GetVisibleQuestions(ctx context.Context, absenceID primitive.ObjectID, absenceType, reasonCategory string) ([]models.QuestionTemplate, error) {
	c, err := GetCatalog(ctx)
	if err != nil {
		return nil, err
	}
	history, err := GetAbsenceAnswers(ctx, absenceID)
	if err != nil {
		return nil, err
	}
	return VisibleQuestions(c, absenceType, reasonCategory, history), nil
}

// AnalyzeAnswersForRisk scores the absence's answer history. Reading an
// assessment has no side effects; escalation happens only on the save path
// via EscalateIfCritical.
func AnalyzeAnswersForRisk(ctx context.Context, absenceID primitive.ObjectID) (*models.RiskAssessment, error) {
	history, err := GetAbsenceAnswers(ctx, absenceID)
	if err != nil {
		return nil, err
	}

	assessment := AnalyzeRisk(history)
	return &assessment, nil
}

// EscalateIfCritical enqueues an escalation job for the assigned manager when
// a freshly saved answer set scores Critical. Best-effort: the enqueue never
// fails the request.
func EscalateIfCritical(absenceID primitive.ObjectID, assessment *models.RiskAssessment) {
	if assessment == nil || !assessment.RequiresImmediateAttention {
		return
	}
	enqueueEscalation(absenceID, assessment)
}

// CheckMentalHealthFollowUp reports whether the absence needs a mental-health
// follow-up based on its answer history.
func CheckMentalHealthFollowUp(ctx context.Context, absenceID primitive.ObjectID) (bool, error) {
	history, err := GetAbsenceAnswers(ctx, absenceID)
	if err != nil {
		return false, err
	}
	return RequiresMentalHealthFollowUp(history), nil
}

// enqueueEscalation is a package variable so tests can intercept the enqueue
// without a running Redis.
var enqueueEscalation = func(absenceID primitive.ObjectID, assessment *models.RiskAssessment) {
	if database.AsynqClient == nil {
		log.Println("Redis/Asynq not available, skipping risk escalation job")
		return
	}

	task, err := jobs.NewRiskEscalationTask(absenceID.Hex(), assessment.RiskLevel, assessment.Flags)
	if err != nil {
		log.Println("escalation: create task failed:", err)
		return
	}

	if _, err := database.AsynqClient.Enqueue(task, asynq.TaskID(escalationTaskID(absenceID)), asynq.MaxRetry(3)); err != nil {
		log.Println("escalation: enqueue failed:", err)
	} else {
		log.Println("escalation job enqueued for absence:", absenceID.Hex())
	}
}

// escalationTaskID is stable per absence, so asynq's task-id dedup suppresses
// a second enqueue while one is still pending for the same case.
func escalationTaskID(absenceID primitive.ObjectID) string {
	return "risk-escalate-" + absenceID.Hex()
}
