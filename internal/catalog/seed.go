package catalog

import (
	"github.com/shopspring/decimal"

	"simuweb/internal/model"
)

// DefaultProducts returns the built-in storefront catalogue used when no seed
// file is configured. Prices are in rupiah.
func DefaultProducts() []model.Product {
	return []model.Product{
		{
			ID:              1,
			Name:            "Gitar Akustik",
			Price:           decimal.NewFromInt(4799000),
			Description:     "Gitar akustik dreadnought klasik dengan nada yang kaya dan penuh.",
			LongDescription: "Rasakan suara abadi dari gitar akustik dreadnought klasik kami. Dibuat dari kayu mahoni dan spruce berkualitas tinggi, instrumen ini menawarkan nada resonan yang kaya, sempurna untuk semua gaya bermain. Menampilkan profil leher yang nyaman dan perangkat keras yang tahan lama untuk kinerja andal selama bertahun-tahun.",
			Image:           "https://picsum.photos/600/400?random=1",
			DataAIHint:      "acoustic guitar",
		},
		{
			ID:              2,
			Name:            "Keyboard Elektrik",
			Price:           decimal.NewFromInt(7999000),
			Description:     "Keyboard portabel 61-kunci dengan ratusan suara bawaan.",
			LongDescription: "Bebaskan kreativitas Anda dengan keyboard elektrik portabel 61-kunci ini. Dilengkapi dengan ratusan suara, ritme, dan efek berkualitas tinggi. Menampilkan tuts yang peka terhadap sentuhan, sistem pelajaran bawaan, dan konektivitas MIDI, ini adalah pilihan ideal untuk pemula dan musisi berpengalaman.",
			Image:           "https://picsum.photos/600/400?random=2",
			DataAIHint:      "electric keyboard",
		},
		{
			ID:              3,
			Name:            "Headphone Studio",
			Price:           decimal.NewFromInt(2399000),
			Description:     "Headphone over-ear yang dirancang untuk pemantauan profesional.",
			LongDescription: "Dengarkan setiap detail musik Anda dengan headphone studio profesional ini. Desain over-ear, closed-back memberikan isolasi kebisingan yang sangat baik, sementara driver large-aperture menghasilkan reproduksi audio yang akurat dan seimbang. Sempurna untuk mixing, mastering, atau mendengarkan secara kritis.",
			Image:           "https://picsum.photos/600/400?random=3",
			DataAIHint:      "studio headphones",
		},
		{
			ID:              4,
			Name:            "Mikrofon Kondenser",
			Price:           decimal.NewFromInt(3199000),
			Description:     "Mikrofon kondenser diafragma besar untuk vokal berkualitas studio.",
			LongDescription: "Tangkap audio murni dengan mikrofon kondenser diafragma besar ini. Respons frekuensi yang lebar dan sensitivitas tinggi membuatnya sempurna untuk merekam vokal, instrumen akustik, dan podcast. Termasuk shock mount dan pop filter untuk hasil profesional langsung dari kotaknya.",
			Image:           "https://picsum.photos/600/400?random=4",
			DataAIHint:      "condenser microphone",
		},
		{
			ID:              5,
			Name:            "DJ Turntable",
			Price:           decimal.NewFromInt(11199000),
			Description:     "Turntable direct-drive torsi tinggi untuk DJ profesional.",
			LongDescription: "Standar emas untuk DJ profesional, turntable direct-drive torsi tinggi ini memberikan kinerja dan keandalan yang tak tertandingi. Menampilkan motor yang dikendalikan kuarsa, kontrol pitch yang dapat disesuaikan, dan konstruksi yang tahan lama, turntable ini dibuat untuk menahan kerasnya penggunaan setiap malam di lingkungan klub mana pun.",
			Image:           "https://picsum.photos/600/400?random=5",
			DataAIHint:      "dj turntable",
		},
		{
			ID:              6,
			Name:            "Synthesizer",
			Price:           decimal.NewFromInt(14399000),
			Description:     "Synthesizer analog dengan suara klasik dan fitur modern.",
			LongDescription: "Jelajahi alam semesta sonik dengan synthesizer analog yang kuat ini. Menggabungkan suara hangat klasik dengan fleksibilitas modern, ia memiliki beberapa osilator, filter yang kaya, dan matriks modulasi yang intuitif. Antarmuka langsungnya mengundang eksperimen dan desain suara tanpa akhir.",
			Image:           "https://picsum.photos/600/400?random=6",
			DataAIHint:      "music synthesizer",
		},
		{
			ID:              7,
			Name:            "Mesin Drum",
			Price:           decimal.NewFromInt(7359000),
			Description:     "Buat ritme yang menarik dengan mesin drum serbaguna ini.",
			LongDescription: "Dari irama klasik hingga alur modern, mesin drum serbaguna ini siap membantu Anda. Ini mencakup perpustakaan besar suara drum ikonik, sequencer langkah yang kuat, dan kontrol kinerja yang memudahkan untuk membuat dan memanipulasi ritme dengan cepat. Suatu keharusan bagi produser dari genre apa pun.",
			Image:           "https://picsum.photos/600/400?random=7",
			DataAIHint:      "drum machine",
		},
		{
			ID:              8,
			Name:            "Antarmuka Audio",
			Price:           decimal.NewFromInt(3999000),
			Description:     "Antarmuka audio USB 2-in/2-out untuk perekaman berkualitas tinggi.",
			LongDescription: "Rekam musik Anda dengan kualitas sebening kristal dengan antarmuka audio USB 2-in/2-out ini. Ini fitur preamp headroom tinggi, konversi digital murni, dan pemantauan tanpa latensi. Ringkas dan ditenagai oleh bus, ini adalah pusat yang sempurna untuk pengaturan studio rumah Anda.",
			Image:           "https://picsum.photos/600/400?random=8",
			DataAIHint:      "audio interface",
		},
		{
			ID:              9,
			Name:            "Gitar Elektrik",
			Price:           decimal.NewFromInt(9599000),
			Description:     "Gitar elektrik solid-body serbaguna untuk rock, blues, dan lainnya.",
			LongDescription: "Gitar elektrik solid-body yang ikonik ini adalah pekerja keras sejati. Dengan pickup serbaguna dan profil leher yang nyaman, sangat cocok untuk berbagai genre, mulai dari rock yang renyah hingga blues yang halus. Konstruksi yang kokoh memastikan daya tahan untuk pertunjukan dan sesi studio.",
			Image:           "https://picsum.photos/600/400?random=9",
			DataAIHint:      "electric guitar",
		},
		{
			ID:              10,
			Name:            "Gitar Bass",
			Price:           decimal.NewFromInt(8799000),
			Description:     "Gitar bass 4-senar klasik dengan nada low-end yang kuat.",
			LongDescription: "Letakkan dasar untuk alur Anda dengan gitar bass 4-senar klasik ini. Dikenal karena nadanya yang kuat dan menggelegar, ini telah menjadi andalan dalam genre musik yang tak terhitung jumlahnya. Leher yang halus dan bodi yang seimbang membuatnya nyaman dimainkan selama berjam-jam.",
			Image:           "https://picsum.photos/600/400?random=10",
			DataAIHint:      "bass guitar",
		},
		{
			ID:              11,
			Name:            "Biola Akustik",
			Price:           decimal.NewFromInt(5599000),
			Description:     "Biola ukuran penuh buatan tangan yang ideal untuk siswa menengah.",
			LongDescription: "Tingkatkan perjalanan musik Anda dengan biola akustik ukuran penuh buatan tangan kami. Dibuat dari kayu maple dan spruce pilihan, menghasilkan nada yang hangat dan ekspresif. Ideal untuk siswa menengah yang ingin maju, ia hadir lengkap dengan busur, rosin, dan tas jinjing.",
			Image:           "https://picsum.photos/600/400?random=11",
			DataAIHint:      "acoustic violin",
		},
		{
			ID:              12,
			Name:            "Saksofon Alto",
			Price:           decimal.NewFromInt(12799000),
			Description:     "Saksofon alto berlapis emas untuk nada yang halus dan responsif.",
			LongDescription: "Rasakan nada yang halus dan kaya dari saksofon alto kami. Selesai dengan lapisan pernis emas yang indah, tidak hanya terlihat memukau tetapi juga memberikan suara yang responsif dan bersemangat. Sempurna untuk siswa jazz dan klasik, ia menawarkan intonasi dan ergonomi yang hebat.",
			Image:           "https://picsum.photos/600/400?random=12",
			DataAIHint:      "alto saxophone",
		},
		{
			ID:              13,
			Name:            "Monitor Studio",
			Price:           decimal.NewFromInt(4899000),
			Description:     "Monitor studio nearfield bertenaga untuk pencampuran yang akurat (Pasangan).",
			LongDescription: "Percayai mixing Anda dengan sepasang monitor studio nearfield bertenaga ini. Dirancang untuk reproduksi suara yang datar dan akurat, mereka mengungkapkan setiap nuansa dalam rekaman Anda. Dengan amplifier Kelas D bi-amped dan kontrol penyesuaian akustik, mereka beradaptasi dengan ruangan mana pun.",
			Image:           "https://picsum.photos/600/400?random=13",
			DataAIHint:      "studio monitors",
		},
		{
			ID:              14,
			Name:            "Pengontrol MIDI",
			Price:           decimal.NewFromInt(2999000),
			Description:     "Pengontrol keyboard MIDI 49-tuts dengan pad dan kenop.",
			LongDescription: "Kendalikan studio virtual Anda dengan pengontrol keyboard MIDI 49-tuts ini. Menampilkan tuts semi-tertimbang, 8 pad drum yang peka terhadap kecepatan, dan kenop yang dapat dialihkan, ini memberikan kontrol langsung atas instrumen dan DAW Anda. Integrasi yang mulus dan konstruksi yang kokoh.",
			Image:           "https://picsum.photos/600/400?random=14",
			DataAIHint:      "midi controller",
		},
		{
			ID:              15,
			Name:            "Mixer Digital",
			Price:           decimal.NewFromInt(15999000),
			Description:     "Mixer digital 16-saluran yang ringkas dengan kontrol nirkabel.",
			LongDescription: "Revolusikan suara live Anda dengan mixer digital 16-saluran yang ringkas ini. Menawarkan preamp berkualitas studio, efek bawaan, dan kemampuan untuk mencampur secara nirkabel dari tablet apa pun. Ini kuat, portabel, dan sangat fleksibel untuk band, tempat, dan rumah ibadah.",
			Image:           "https://picsum.photos/600/400?random=15",
			DataAIHint:      "digital mixer",
		},
		{
			ID:              16,
			Name:            "Ukulele Konser",
			Price:           decimal.NewFromInt(1599000),
			Description:     "Ukulele konser mahoni dengan suara yang cerah dan ceria.",
			LongDescription: "Bawa getaran pulau ke musik Anda dengan ukulele konser mahoni kami. Ukurannya yang sedikit lebih besar dari soprano memberikan nada yang lebih penuh dan lebih bergema sambil tetap menjaga suara ukulele klasik yang cerah. Sangat cocok untuk pemula dan pemain berpengalaman.",
			Image:           "https://picsum.photos/600/400?random=16",
			DataAIHint:      "concert ukulele",
		},
	}
}
