// Package memory holds the seeded posting corpus and an in-memory
// JobRepository. The corpus doubles as the seed data cmd/api loads into
// MongoDB when the collection is empty.
package memory

import (
	"time"

	"github.com/quickalba/job-board-system/internal/core/domain"
	"github.com/quickalba/job-board-system/internal/core/ports"
)

func ts(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic("memory: bad seed timestamp: " + value)
	}
	return t
}

// SeedJobs returns the canonical posting corpus in posting order.
func SeedJobs() []domain.JobPosting {
	return []domain.JobPosting{
		{
			ID:             "1",
			Title:          "서빙 스태프",
			Company:        "더 테이블 레스토랑",
			Location:       "서울 강남구",
			EmploymentType: domain.EmploymentPartTime,
			Salary:         &domain.Salary{Min: 10000, Max: 12000, Currency: "KRW", Period: domain.PeriodHour},
			Description:    "고급 레스토랑에서 근무할 친절하고 성실한 서빙 스태프를 모집합니다. 경험자 우대하며, 교육 제공합니다.",
			Requirements:   []string{"서비스업 경험 1년 이상", "친절하고 밝은 성격", "체력적으로 건강한 분", "주말 근무 가능"},
			Benefits:       []string{"4대 보험", "식사 제공", "교통비 지원", "성과급"},
			PostedAt:       ts("2024-01-15T09:00:00Z"),
			ExpiresAt:      ts("2024-02-15T23:59:59Z"),
			Category:       "서비스업",
			Experience:     domain.ExperienceEntry,
			Urgent:         true,
			CompanyLogo:    "https://via.placeholder.com/100x100?text=TR",
			Contact:        domain.ContactInfo{Email: "hr@thetable.com", Phone: "02-1234-5678"},
		},
		{
			ID:             "2",
			Title:          "바리스타",
			Company:        "커피빈 강남점",
			Location:       "서울 강남구",
			EmploymentType: domain.EmploymentFullTime,
			Salary:         &domain.Salary{Min: 2800000, Max: 3200000, Currency: "KRW", Period: domain.PeriodMonth},
			Description:    "커피에 대한 열정이 있는 바리스타를 모집합니다. 라떼아트 가능하신 분 우대합니다.",
			Requirements:   []string{"바리스타 자격증 보유", "커피 제조 경험 2년 이상", "라떼아트 가능자 우대", "고객 서비스 마인드"},
			Benefits:       []string{"4대 보험", "연차 휴가", "교육비 지원", "커피 할인"},
			PostedAt:       ts("2024-01-14T10:30:00Z"),
			ExpiresAt:      ts("2024-02-14T23:59:59Z"),
			Category:       "카페/바리스타",
			Experience:     domain.ExperienceMid,
			CompanyLogo:    "https://via.placeholder.com/100x100?text=CB",
			Contact:        domain.ContactInfo{Email: "jobs@coffeebean.kr", Phone: "02-2345-6789"},
		},
		{
			ID:             "3",
			Title:          "주방 보조",
			Company:        "맛있는집",
			Location:       "서울 마포구",
			EmploymentType: domain.EmploymentPartTime,
			Salary:         &domain.Salary{Min: 9500, Max: 10500, Currency: "KRW", Period: domain.PeriodHour},
			Description:    "한식당에서 근무할 주방 보조를 모집합니다. 요리에 관심있는 분들의 많은 지원 바랍니다.",
			Requirements:   []string{"성실하고 책임감 있는 분", "체력적으로 건강한 분", "주방 위생 관리 가능", "평일 오후 시간 근무 가능"},
			Benefits:       []string{"식사 제공", "교통비 지원", "요리 기술 습득 기회"},
			PostedAt:       ts("2024-01-13T14:00:00Z"),
			ExpiresAt:      ts("2024-02-13T23:59:59Z"),
			Category:       "주방/조리",
			Experience:     domain.ExperienceEntry,
			CompanyLogo:    "https://via.placeholder.com/100x100?text=MJ",
			Contact:        domain.ContactInfo{Phone: "02-3456-7890"},
		},
		{
			ID:             "4",
			Title:          "호텔 프론트 데스크",
			Company:        "그랜드 호텔",
			Location:       "서울 중구",
			EmploymentType: domain.EmploymentFullTime,
			Salary:         &domain.Salary{Min: 3000000, Max: 3500000, Currency: "KRW", Period: domain.PeriodMonth},
			Description:    "5성급 호텔에서 근무할 프론트 데스크 직원을 모집합니다. 영어 가능자 우대합니다.",
			Requirements:   []string{"호텔업 경험 1년 이상", "영어 회화 가능", "고객 서비스 경험", "야간 근무 가능", "컴퓨터 활용 능력"},
			Benefits:       []string{"4대 보험", "연차 휴가", "직원 할인", "교육 프로그램", "승진 기회"},
			PostedAt:       ts("2024-01-12T11:00:00Z"),
			ExpiresAt:      ts("2024-02-12T23:59:59Z"),
			Category:       "호텔/숙박업",
			Experience:     domain.ExperienceMid,
			CompanyLogo:    "https://via.placeholder.com/100x100?text=GH",
			Contact:        domain.ContactInfo{Email: "careers@grandhotel.com", Phone: "02-4567-8901", Website: "https://grandhotel.com"},
		},
		{
			ID:             "5",
			Title:          "배달 라이더",
			Company:        "퀵서비스",
			Location:       "서울 전지역",
			EmploymentType: domain.EmploymentFreelance,
			Salary:         &domain.Salary{Min: 15000, Max: 25000, Currency: "KRW", Period: domain.PeriodHour},
			Description:    "오토바이를 이용한 음식 배달 라이더를 모집합니다. 자유로운 근무 시간과 높은 수입을 보장합니다.",
			Requirements:   []string{"오토바이 운전 가능", "2종 보통 면허 보유", "서울 지리 숙지", "스마트폰 사용 가능"},
			Benefits:       []string{"자유로운 근무시간", "높은 수입", "유류비 지원", "보험 지원"},
			PostedAt:       ts("2024-01-11T16:00:00Z"),
			ExpiresAt:      ts("2024-03-11T23:59:59Z"),
			Category:       "배달/운송",
			Experience:     domain.ExperienceEntry,
			Urgent:         true,
			CompanyLogo:    "https://via.placeholder.com/100x100?text=QS",
			Contact:        domain.ContactInfo{Phone: "02-5678-9012"},
		},
		{
			ID:             "6",
			Title:          "매장 관리자",
			Company:        "편의점 24",
			Location:       "서울 송파구",
			EmploymentType: domain.EmploymentFullTime,
			Salary:         &domain.Salary{Min: 3500000, Max: 4000000, Currency: "KRW", Period: domain.PeriodMonth},
			Description:    "편의점 매장 관리자를 모집합니다. 매장 운영 전반을 담당하며, 관리 경험이 있는 분을 우대합니다.",
			Requirements:   []string{"매장 관리 경험 2년 이상", "리더십", "재고 관리 경험", "POS 시스템 사용 가능", "야간 근무 가능"},
			Benefits:       []string{"4대 보험", "성과급", "승진 기회", "교육 지원", "연차 휴가"},
			PostedAt:       ts("2024-01-10T13:30:00Z"),
			ExpiresAt:      ts("2024-02-10T23:59:59Z"),
			Category:       "소매/유통",
			Experience:     domain.ExperienceSenior,
			CompanyLogo:    "https://via.placeholder.com/100x100?text=24",
			Contact:        domain.ContactInfo{Email: "manager@store24.co.kr", Phone: "02-6789-0123"},
		},
	}
}

// SeedCatalog returns the lookup lists the filter panel is built from.
// The "전체" (all) entries belong to the rendered lists, not to the filter
// semantics, so they are part of the catalog payload.
func SeedCatalog() ports.Catalog {
	return ports.Catalog{
		Categories: []string{
			"전체", "서비스업", "카페/바리스타", "주방/조리", "호텔/숙박업", "배달/운송", "소매/유통",
		},
		Locations: []string{
			"전체", "서울 강남구", "서울 마포구", "서울 중구", "서울 송파구", "서울 전지역",
		},
		EmploymentTypes: []ports.LabeledValue{
			{Value: "all", Label: "전체"},
			{Value: string(domain.EmploymentFullTime), Label: "정규직"},
			{Value: string(domain.EmploymentPartTime), Label: "아르바이트"},
			{Value: string(domain.EmploymentContract), Label: "계약직"},
			{Value: string(domain.EmploymentFreelance), Label: "프리랜서"},
		},
		ExperienceLevels: []ports.LabeledValue{
			{Value: "all", Label: "전체"},
			{Value: string(domain.ExperienceEntry), Label: "신입"},
			{Value: string(domain.ExperienceMid), Label: "경력 1-3년"},
			{Value: string(domain.ExperienceSenior), Label: "경력 3년+"},
			{Value: string(domain.ExperienceExecutive), Label: "임원급"},
		},
	}
}

// SeedAccounts returns the demo credential table: one jobseeker and one
// employer, both with password "password123". Hashing happens at seed time.
func SeedAccounts() []SeedAccount {
	return []SeedAccount{
		{Email: "jobseeker@example.com", Name: "김철수", Password: "password123", Role: domain.RoleJobseeker},
		{Email: "employer@example.com", Name: "박영희", Password: "password123", Role: domain.RoleEmployer},
	}
}

// SeedAccount is a plaintext credential used only to seed the user table.
type SeedAccount struct {
	Email    string
	Name     string
	Password string
	Role     string
}
