package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
)

// seedIfEmpty loads the demo data for all three sites. Every statement is
// INSERT OR IGNORE with fixed ids, so running it on every start is a no-op
// once the rows exist.
func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM products`); err != nil {
		return err
	}
	if n == 0 {
		log.Println("[seed] inserting demo shop/salon/homecare data")
	}

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	tx.MustExec(`INSERT OR IGNORE INTO products(id,name,price,image,stock) VALUES
	  (1,'Wireless Headphones',99.99,'https://images.unsplash.com/photo-1484704849700-f032a568e944?w=400&h=400&fit=crop&auto=format',100),
	  (2,'Smart Watch',249.99,'https://images.unsplash.com/photo-1434493789847-2f02dc6ca35d?w=400&h=400&fit=crop&auto=format',100),
	  (3,'Laptop Stand',49.99,'https://images.unsplash.com/photo-1527864550417-7fd91fc51a46?w=400&h=400&fit=crop&auto=format',100),
	  (4,'Mechanical Keyboard',129.99,'https://images.unsplash.com/photo-1541140532154-b024d705b90a?w=400&h=400&fit=crop&auto=format',100),
	  (5,'Wireless Mouse',59.99,'https://images.unsplash.com/photo-1527864550417-7fd91fc51a46?w=400&h=400&fit=crop&auto=format',100),
	  (6,'USB-C Hub',79.99,'https://images.unsplash.com/photo-1588872657578-7efd1f1555ed?w=400&h=400&fit=crop&auto=format',100),
	  (7,'LED Monitor',299.99,'https://images.unsplash.com/photo-1496181133206-80ce9b88a853?w=400&h=400&fit=crop&auto=format',100),
	  (8,'Webcam HD',89.99,'https://images.unsplash.com/photo-1496181133206-80ce9b88a853?w=400&h=400&fit=crop&auto=format',100)`)

	tx.MustExec(`INSERT OR IGNORE INTO salon_services(id,name,description,price,duration,image,category) VALUES
	  (1,'Haircut & Styling','Professional haircuts and styling for all hair types. Our expert stylists will help you achieve the perfect look.',45,45,'https://plus.unsplash.com/premium_photo-1661963320607-aebac6fcb40d?w=600&h=400&fit=crop','hair'),
	  (2,'Hair Coloring','Expert color services including highlights, balayage, ombre, and full color transformations.',120,120,'https://images.unsplash.com/photo-1516975080664-ed2fc6a32937?w=600&h=400&fit=crop','hair'),
	  (3,'Hair Treatment','Deep conditioning, keratin treatments, and repair services for healthy, lustrous hair.',65,60,'https://images.unsplash.com/photo-1519699047748-de8e457a634e?w=600&h=400&fit=crop','hair'),
	  (4,'Manicure & Pedicure','Luxury nail care including gel polish, nail art, and spa treatments for hands and feet.',40,60,'https://images.unsplash.com/photo-1604654894610-df63bc536371?w=600&h=400&fit=crop','nails'),
	  (5,'Facial Treatment','Rejuvenating facial treatments customized for your skin type. Includes cleansing, exfoliation, and hydration.',80,75,'https://images.unsplash.com/photo-1612817288484-6f916006741a?w=600&h=400&fit=crop','skin'),
	  (6,'Bridal Package','Complete bridal beauty package including hair, makeup, and spa treatments for your special day.',350,240,'https://images.unsplash.com/photo-1519741497674-611481863552?w=600&h=400&fit=crop','special'),
	  (7,'Beard Trim & Styling','Professional beard grooming, shaping, and styling for the modern gentleman.',25,30,'https://images.unsplash.com/photo-1621605815971-fbc98d665033?w=600&h=400&fit=crop','hair'),
	  (8,'Makeup Application','Professional makeup for any occasion - from natural looks to glamorous evening styles.',75,60,'https://images.unsplash.com/photo-1487412947147-5cebf100ffc2?w=600&h=400&fit=crop','makeup')`)

	tx.MustExec(`INSERT OR IGNORE INTO salon_team(id,name,role,bio,image,specialties,experience_years) VALUES
	  (1,'Isabella Martinez','Master Stylist & Founder','With over 15 years of experience, Isabella has transformed thousands of clients. Trained in Paris and Milan, she specializes in precision cuts and color artistry.','https://images.unsplash.com/photo-1580618672591-eb180b1a973f?w=400&h=400&fit=crop','Color Correction,Balayage,Bridal',15),
	  (2,'Marcus Chen','Senior Colorist','Marcus is our color wizard, known for his stunning balayage and creative color transformations. His work has been featured in major fashion magazines.','https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=400&fit=crop','Balayage,Ombre,Fashion Colors',10),
	  (3,'Sophia Williams','Hair Stylist','Sophia brings energy and creativity to every appointment. She excels at modern cuts and updos, making her a favorite for special events.','https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=400&h=400&fit=crop','Updos,Modern Cuts,Extensions',7),
	  (4,'Emma Thompson','Nail Artist','Emma is a certified nail technician with an artistic flair. From classic manicures to intricate nail art, she creates miniature masterpieces.','https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=400&h=400&fit=crop','Nail Art,Gel Extensions,Spa Treatments',5),
	  (5,'David Kim','Esthetician','David specializes in advanced skincare treatments. His gentle approach and expertise in facial rejuvenation have earned him a loyal clientele.','https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=400&h=400&fit=crop','Facials,Chemical Peels,Microdermabrasion',8),
	  (6,'Olivia Brown','Makeup Artist','Olivia is a certified makeup artist with experience in bridal, editorial, and special effects makeup. She brings visions to life.','https://images.unsplash.com/photo-1534528741775-53994a69daeb?w=400&h=400&fit=crop','Bridal Makeup,Editorial,Contouring',6)`)

	tx.MustExec(`INSERT OR IGNORE INTO salon_gallery(id,title,image,category) VALUES
	  (1,'Elegant Updo','https://images.unsplash.com/photo-1487412947147-5cebf100ffc2?w=600&h=600&fit=crop','updo'),
	  (2,'Balayage Magic','https://images.unsplash.com/photo-1515377905703-c4788e51af15?w=600&h=600&fit=crop','color'),
	  (3,'Color Transformation','https://images.unsplash.com/photo-1522337360788-8b13dee7a37e?w=600&h=600&fit=crop','color'),
	  (4,'Bridal Style','https://images.unsplash.com/photo-1519741497674-611481863552?w=600&h=600&fit=crop','bridal'),
	  (5,'Modern Cut','https://images.unsplash.com/photo-1580618672591-eb180b1a973f?w=600&h=600&fit=crop','cut'),
	  (6,'Glamour Look','https://images.unsplash.com/photo-1560066984-138dadb4c035?w=600&h=600&fit=crop','styling'),
	  (7,'Natural Waves','https://images.unsplash.com/photo-1522337094846-8a818192de1f?w=600&h=600&fit=crop','styling'),
	  (8,'Bold Color','https://images.unsplash.com/photo-1605497788044-5a32c7078486?w=600&h=600&fit=crop','color')`)

	tx.MustExec(`INSERT OR IGNORE INTO salon_reviews(id,name,rating,comment,image) VALUES
	  (1,'Jennifer L.',5,'Absolutely love my new hair color! Isabella is a true artist. The salon atmosphere is so relaxing.','https://images.unsplash.com/photo-1544005313-94ddf0286df2?w=100&h=100&fit=crop'),
	  (2,'Michael R.',5,'Best haircut I''ve ever had. Marcus really understood what I wanted and delivered perfectly.','https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=100&h=100&fit=crop'),
	  (3,'Sarah M.',5,'The bridal package was incredible! Sophia made me feel like a princess on my wedding day.','https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=100&h=100&fit=crop'),
	  (4,'Amanda K.',4,'Great experience overall. The facial treatment left my skin glowing for days!','https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=100&h=100&fit=crop')`)

	tx.MustExec(`INSERT OR IGNORE INTO homecare_services(id,name,description,features,image,icon) VALUES
	  (1,'Personal Care Assistance','Comprehensive help with daily activities including bathing, grooming, dressing, and medication reminders. Our caregivers ensure dignity and comfort.','Bathing & Hygiene,Mobility Assistance,Medication Management,Toileting Support','https://images.unsplash.com/photo-1576765608535-5f04d1e3f289?w=600&h=400&fit=crop','user'),
	  (2,'Medical Support','Skilled nursing care and health monitoring for chronic conditions, post-surgery recovery, and ongoing medical needs.','Health Monitoring,Vital Signs Check,Wound Care,IV Management','https://images.unsplash.com/photo-1579684385127-1ef15d508118?w=600&h=400&fit=crop','heart-pulse'),
	  (3,'Companionship','Meaningful social interaction and emotional support to combat loneliness. We provide friendship, conversation, and engaging activities.','Conversation & Activities,Emotional Support,Safety Monitoring,Social Engagement','https://images.unsplash.com/photo-1582213782179-e0d53f98f2ca?w=600&h=400&fit=crop','heart'),
	  (4,'Meal Preparation','Nutritious meal planning and preparation based on dietary requirements, preferences, and medical restrictions.','Meal Planning,Dietary Restrictions,Grocery Shopping,Kitchen Safety','https://images.unsplash.com/photo-1505576399279-565b52d4ac71?w=600&h=400&fit=crop','utensils'),
	  (5,'Housekeeping','Light housekeeping services to maintain a clean, safe, and comfortable living environment for our clients.','Light Cleaning,Laundry Services,Organization,Errands','https://images.unsplash.com/photo-1628177142898-93e36e4e3a50?w=600&h=400&fit=crop','home'),
	  (6,'Transportation','Safe and reliable transportation to medical appointments, social activities, shopping, and family visits.','Medical Appointments,Shopping Trips,Social Activities,Family Visits','https://images.unsplash.com/photo-1449965408869-eaa3f722e40d?w=600&h=400&fit=crop','car'),
	  (7,'Respite Care','Temporary relief for family caregivers. We step in so you can rest, knowing your loved one is in good hands.','Short-term Care,Flexible Scheduling,Emergency Coverage,Weekend Care','https://images.unsplash.com/photo-1576091160550-2173dba999ef?w=600&h=400&fit=crop','bed'),
	  (8,'Alzheimer''s & Dementia Care','Specialized care for clients with memory conditions. Our trained caregivers provide safe, patient, and compassionate support.','Memory Care,Safety Supervision,Routine Maintenance,Family Support','https://images.unsplash.com/photo-1559839734-2b71ea197ec2?w=600&h=400&fit=crop','brain')`)

	tx.MustExec(`INSERT OR IGNORE INTO homecare_caregivers(id,name,role,bio,image,certifications,experience_years,rating) VALUES
	  (1,'Sarah Johnson','Registered Nurse','Sarah has over 12 years of experience in home healthcare. She specializes in chronic disease management, wound care, and post-surgical recovery. Her compassionate approach has earned her countless commendations from families.','https://images.unsplash.com/photo-1559839734-2b71ea197ec2?w=400&h=400&fit=crop','RN License,CPR/BLS Certified,Wound Care Specialist,IV Therapy',12,4.9),
	  (2,'Michael Chen','Certified Nursing Assistant','Michael brings warmth and professionalism to every client interaction. With expertise in personal care and mobility assistance, he helps clients maintain their independence and dignity.','https://images.unsplash.com/photo-1612349317150-e413f6a5b16d?w=400&h=400&fit=crop','CNA Certified,First Aid,Dementia Care,Mobility Training',8,4.8),
	  (3,'Emily Rodriguez','Home Health Aide','Emily is dedicated to providing excellent care with a focus on dignity and respect. She excels at creating meaningful connections with clients and their families.','https://images.unsplash.com/photo-1594824476967-48c8b964273f?w=400&h=400&fit=crop','HHA Certified,CPR Certified,Alzheimer''s Training,Hospice Care',6,4.9),
	  (4,'James Wilson','Physical Therapy Assistant','James helps clients regain mobility and strength through personalized exercise programs. His encouraging attitude motivates clients to achieve their rehabilitation goals.','https://images.unsplash.com/photo-1582750433449-648ed127bb54?w=400&h=400&fit=crop','PTA License,CPR/BLS,Gait Training,Fall Prevention',10,4.7),
	  (5,'Maria Santos','Companion Caregiver','Maria specializes in providing emotional support and companionship. She believes in the healing power of genuine human connection and engaging activities.','https://images.unsplash.com/photo-1551836022-d5d88e9218df?w=400&h=400&fit=crop','Companion Care,First Aid,Dementia Friendly,Bilingual',5,5.0),
	  (6,'Robert Taylor','Licensed Practical Nurse','Robert combines clinical expertise with a caring bedside manner. He specializes in medication management and vital signs monitoring for complex cases.','https://images.unsplash.com/photo-1537368910025-700350fe46c7?w=400&h=400&fit=crop','LPN License,IV Certified,Medication Management,Diabetes Care',15,4.8)`)

	tx.MustExec(`INSERT OR IGNORE INTO homecare_testimonials(id,name,relation,rating,comment,image) VALUES
	  (1,'Margaret Thompson','Client',5,'CareComfort has been a blessing for our family. Sarah takes such wonderful care of my mother - she''s become like family to us.','https://images.unsplash.com/photo-1544005313-94ddf0286df2?w=100&h=100&fit=crop'),
	  (2,'David Miller','Son of Client',5,'After my father''s surgery, we didn''t know how we''d manage. The team at CareComfort made his recovery smooth and stress-free.','https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=100&h=100&fit=crop'),
	  (3,'Linda Garcia','Daughter of Client',5,'The companionship care for my mom has been incredible. Maria brings so much joy to her days. I''m forever grateful.','https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=100&h=100&fit=crop'),
	  (4,'Robert Chen','Spouse of Client',4,'Professional, compassionate, and reliable. CareComfort helped us navigate a difficult time with grace and expertise.','https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=100&h=100&fit=crop')`)

	return tx.Commit()
}
